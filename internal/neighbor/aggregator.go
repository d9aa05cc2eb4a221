// Package neighbor implements C3, the Neighbor Aggregator: for a
// given cell it walks the neighborhood template for the active
// lattice, resolves each offset through the topology resolver (C2),
// and produces the effective neighbor count consulted by the step
// evaluator (C5). Partially-decayed cells contribute a fractional,
// signed weight sampled from the vitality table (C4).
package neighbor

import (
	"fmt"

	"github.com/Mahdi-s/games-of-life/internal/grid"
	"github.com/Mahdi-s/games-of-life/internal/topology"
	"github.com/Mahdi-s/games-of-life/internal/types"
	"github.com/Mahdi-s/games-of-life/internal/vitality"
)

func errUnrecognizedNeighborhood(n types.Neighborhood) error {
	return fmt.Errorf("neighbor: unrecognized neighborhood %q", n)
}

// Aggregator computes the effective neighbor count for cells of one
// fixed neighborhood, against one fixed topology Resolver and vitality
// table. It holds no per-cell mutable state, so one Aggregator value
// is shared read-only by every concurrent cell task in a step.
type Aggregator struct {
	neighborhood types.Neighborhood
	resolver     *topology.Resolver
	table        vitality.Table
	numStates    int
	maxCount     int
}

// New constructs an Aggregator. numStates and maxCount come from the
// active Rule; table is the vitality curve's baked samples (an
// all-zero table disables vitality, yielding the classical integer
// count).
func New(neighborhood types.Neighborhood, resolver *topology.Resolver, table vitality.Table, numStates, maxCount int) (*Aggregator, error) {
	if _, err := templateFor(neighborhood, 0); err != nil {
		return nil, err
	}
	return &Aggregator{
		neighborhood: neighborhood,
		resolver:     resolver,
		table:        table,
		numStates:    numStates,
		maxCount:     maxCount,
	}, nil
}

// Count computes the effective neighbor count for the cell at (x, y)
// in buf's front buffer (§4.3). The result is clamped to [0,maxCount]
// and truncated to an integer before the caller indexes a rule mask
// with it.
func (a *Aggregator) Count(buf *grid.Buffers, x, y int) int {
	offs, _ := templateFor(a.neighborhood, y)

	sum := 0.0
	for _, o := range offs {
		rx, ry, ok := a.resolver.Resolve(x+o.dx, y+o.dy)
		if !ok {
			continue // absent is equivalent to a dead cell
		}
		sum += a.weight(buf.ReadFrontXY(rx, ry))
	}

	if sum < 0 {
		sum = 0
	}
	if sum > float64(a.maxCount) {
		sum = float64(a.maxCount)
	}
	return int(sum)
}

// weight returns a cell's contribution to a neighbor's effective
// count: 1 for alive, 0 for dead, and a vitality-sampled signed
// fraction for decay states.
func (a *Aggregator) weight(s grid.State) float64 {
	switch {
	case s == grid.Alive:
		return 1
	case s == grid.Dead:
		return 0
	case int(s) >= 2 && int(s) < a.numStates:
		v := float64(a.numStates-int(s)) / float64(a.numStates-1)
		return a.table.Sample(v)
	default:
		return 0
	}
}
