// Package ca ties together C1-C5 into the simulation kernel: it owns
// the grid buffer pair, resolves rule/topology/vitality changes
// between steps, and dispatches the data-parallel step evaluator.
//
// The shape of Engine — a struct wrapping the owned state plus a
// small Start/Stop lifecycle — follows internal/ca/engine.go in the
// teacher repo; the step logic itself is new, generalized from the
// teacher's hardcoded Conway transition to the full B/S + decay-chain
// state machine of §4.5.
package ca

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mahdi-s/games-of-life/internal/grid"
	"github.com/Mahdi-s/games-of-life/internal/neighbor"
	"github.com/Mahdi-s/games-of-life/internal/rule"
	"github.com/Mahdi-s/games-of-life/internal/topology"
	"github.com/Mahdi-s/games-of-life/internal/types"
	"github.com/Mahdi-s/games-of-life/internal/vitality"
)

// Engine owns a grid buffer pair and the active rule/topology/vitality
// configuration, and evaluates one generation per Step call.
type Engine struct {
	id string

	mu       sync.RWMutex // guards rule/resolver/aggregator swaps between steps
	buf      *grid.Buffers
	rule     *rule.Rule
	resolver *topology.Resolver
	agg      *neighbor.Aggregator

	rng *rand.Rand

	workers int // tile count for the data-parallel dispatcher

	lifecycleMu sync.Mutex
	running     bool
	stopChan    chan struct{}
	tickRate    time.Duration
	onTick      func(e *Engine)
}

// New constructs an Engine over a width x height grid running r.
func New(width, height int, r *rule.Rule) (*Engine, error) {
	buf, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		id:      uuid.NewString(),
		buf:     buf,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		workers: defaultWorkerCount(),
	}
	if err := e.Reconfigure(r); err != nil {
		return nil, err
	}
	log.Printf("engine[%s]: created %dx%d grid, rule neighborhood=%s boundary=%s",
		e.id, width, height, r.Neighborhood, r.Boundary)
	return e, nil
}

// ID returns this engine's stable instance identifier.
func (e *Engine) ID() string { return e.id }

// Buffers exposes the owned grid buffer pair to collaborators that
// need direct cell access between steps (seed sources, paint
// requests). Callers must not write outside Fill/WriteBack/Randomize.
func (e *Engine) Buffers() *grid.Buffers { return e.buf }

// RNG exposes the engine's deterministic-seedable random source for
// seed/paint probability sampling.
func (e *Engine) RNG() *rand.Rand { return e.rng }

// Rule returns a copy of the currently active rule spec.
func (e *Engine) Rule() rule.Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return *e.rule
}

// Reconfigure replaces the active rule between steps. On validation
// failure the previously-active rule (if any) remains in force. The
// back buffer is implicitly invalidated for the next step since every
// cell is recomputed from scratch each step; the front buffer is
// preserved.
func (e *Engine) Reconfigure(r *rule.Rule) error {
	resolver, err := topology.New(e.buf.Width(), e.buf.Height(), r.Boundary)
	if err != nil {
		return err
	}
	table := vitality.Bake(r.Vitality)
	agg, err := neighbor.New(r.Neighborhood, resolver, table, r.NumStates, r.MaxNeighborCount())
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.rule = r
	e.resolver = resolver
	e.agg = agg
	return nil
}

// Resize reallocates the grid, losing its contents, and re-derives the
// topology resolver for the new dimensions.
func (e *Engine) Resize(width, height int) error {
	e.mu.Lock()
	r := e.rule
	e.mu.Unlock()

	if err := e.buf.Resize(width, height); err != nil {
		return err
	}
	return e.Reconfigure(r)
}

// GetCell returns the current state of (x, y).
func (e *Engine) GetCell(x, y int) grid.State {
	return e.buf.ReadFrontXY(x, y)
}

// Snapshot returns a bulk read-only view of every cell as of the last
// completed step.
func (e *Engine) Snapshot() types.Snapshot {
	cells := e.buf.Snapshot()
	out := make([]int, len(cells))
	for i, s := range cells {
		out[i] = int(s)
	}
	return types.Snapshot{
		Width:      e.buf.Width(),
		Height:     e.buf.Height(),
		Generation: e.buf.Generation(),
		Cells:      out,
	}
}

// AliveCount reports the number of cells with state Alive.
func (e *Engine) AliveCount() int { return e.buf.AliveCount() }

// Generation reports the monotonically increasing step count.
func (e *Engine) Generation() int { return e.buf.Generation() }

// transition applies §4.5's per-cell state machine: s is the front
// state, n the effective neighbor count already clamped/truncated by
// the aggregator.
func transition(r *rule.Rule, s grid.State, n int) grid.State {
	switch {
	case s == grid.Dead:
		if r.BirthMask.Set(n) {
			return grid.Alive
		}
		return grid.Dead
	case s == grid.Alive:
		if r.SurviveMask.Set(n) {
			return grid.Alive
		}
		if r.NumStates > 2 {
			return 2
		}
		return grid.Dead
	default: // decay state s in [2, numStates)
		next := int(s) + 1
		if next >= r.NumStates {
			return grid.Dead
		}
		return grid.State(next)
	}
}

var errNotConfigured = fmt.Errorf("ca: engine has no active rule")
