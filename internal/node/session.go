// Package node wires a simulation kernel together with its HTTP API
// and tunable parameters into one running process behind a single
// Start/Stop lifecycle.
package node

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Mahdi-s/games-of-life/internal/api"
	"github.com/Mahdi-s/games-of-life/internal/ca"
	"github.com/Mahdi-s/games-of-life/internal/config"
	"github.com/Mahdi-s/games-of-life/internal/grid"
	"github.com/Mahdi-s/games-of-life/internal/paint"
	"github.com/Mahdi-s/games-of-life/internal/rule"
	"github.com/Mahdi-s/games-of-life/internal/seed"
	"github.com/Mahdi-s/games-of-life/internal/types"
)

// Config holds session configuration.
type Config struct {
	Width    int
	Height   int
	HTTPPort int
	Rule     *rule.Rule
}

// Session ties an Engine to an HTTP API server and its tunable
// scheduling/seeding parameters.
type Session struct {
	id     string
	config *Config

	engine *ca.Engine
	params *config.EngineParameters
	policy config.SchedulingPolicy
	api    *api.Server

	mu      sync.RWMutex
	running bool
}

// New creates a new session, building the engine and API server but
// not yet starting either.
func New(cfg *Config) (*Session, error) {
	if cfg.Rule == nil {
		return nil, fmt.Errorf("node: rule is required")
	}

	engine, err := ca.New(cfg.Width, cfg.Height, cfg.Rule)
	if err != nil {
		return nil, fmt.Errorf("node: creating engine: %w", err)
	}

	s := &Session{
		id:     engine.ID(),
		config: cfg,
		engine: engine,
		params: config.Defaults(),
		policy: config.NewAdaptiveSchedulingPolicy(1),
	}
	s.engine.SetWorkerCount(s.policy.WorkerCount(cfg.Height))

	apiServer, err := api.New(cfg.HTTPPort, s)
	if err != nil {
		return nil, fmt.Errorf("node: creating API server: %w", err)
	}
	s.api = apiServer

	return s, nil
}

// ID returns the session's engine instance identifier.
func (s *Session) ID() string { return s.engine.ID() }

// Start begins the HTTP API server and the engine's run loop.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("node: session already running")
	}

	log.Printf("node[%s]: starting session", s.id)
	if err := s.api.Start(ctx); err != nil {
		return fmt.Errorf("node: starting API server: %w", err)
	}

	tickRate := time.Duration(s.params.GetInt("tick_milliseconds", 100)) * time.Millisecond
	s.engine.Start(tickRate, func(e *ca.Engine) {
		log.Printf("node[%s]: generation=%d alive=%d", s.id, e.Generation(), e.AliveCount())
	})

	s.running = true
	log.Printf("node[%s]: session started", s.id)
	return nil
}

// Stop gracefully shuts down the engine and API server.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	log.Printf("node[%s]: stopping session", s.id)
	s.engine.Stop()
	s.api.Stop()
	s.running = false
	log.Printf("node[%s]: session stopped", s.id)
}

// Snapshot, GetCell, Generation, AliveCount, Step, Rule, Reconfigure,
// and Resize satisfy api.EngineProvider by delegating to the engine.

func (s *Session) Snapshot() types.Snapshot { return s.engine.Snapshot() }

func (s *Session) GetCell(x, y int) (int, error) {
	if x < 0 || x >= s.engine.Buffers().Width() || y < 0 || y >= s.engine.Buffers().Height() {
		return 0, fmt.Errorf("node: cell (%d,%d) out of range", x, y)
	}
	return int(s.engine.GetCell(x, y)), nil
}

func (s *Session) Generation() int { return s.engine.Generation() }

func (s *Session) AliveCount() int { return s.engine.AliveCount() }

func (s *Session) Step() error { return s.engine.Step() }

func (s *Session) Rule() rule.Rule { return s.engine.Rule() }

func (s *Session) Reconfigure(r *rule.Rule) error { return s.engine.Reconfigure(r) }

func (s *Session) Resize(width, height int) error {
	if err := s.engine.Resize(width, height); err != nil {
		return err
	}
	s.engine.SetWorkerCount(s.policy.WorkerCount(height))
	return nil
}

// SeedRandom satisfies api.SeedProvider.
func (s *Session) SeedRandom(density float64, includeDecay bool) error {
	r := s.engine.Rule()
	seed.RandomDensity(s.engine.Buffers(), density, includeDecay, r.NumStates, s.engine.RNG())
	return nil
}

// SeedPattern satisfies api.SeedProvider.
func (s *Session) SeedPattern(name string, originX, originY, tileX, tileY int) error {
	return seed.NamedPattern(s.engine.Buffers(), name, originX, originY, tileX, tileY)
}

// SeedShape satisfies api.SeedProvider.
func (s *Session) SeedShape(shape types.Shape, radius int, state int) error {
	return seed.CenteredShape(s.engine.Buffers(), shape, radius, grid.State(state))
}

// Paint satisfies api.PaintProvider.
func (s *Session) Paint(req paint.Request) error {
	paint.Apply(s.engine.Buffers(), req, s.engine.RNG())
	return nil
}

// Parameters exposes the session's tunable engine parameters.
func (s *Session) Parameters() *config.EngineParameters { return s.params }
