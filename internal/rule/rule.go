// Package rule defines the B/S rule specification: birth/survive
// bitmasks, state depth, lattice, and boundary topology. A Rule is
// immutable once constructed and cheap to pass by value for the
// duration of a step.
package rule

import (
	"fmt"

	"github.com/Mahdi-s/games-of-life/internal/types"
	"github.com/Mahdi-s/games-of-life/internal/vitality"
)

// maxNeighborCount returns the neighbor-count ceiling for a
// neighborhood, i.e. the number of bits birthMask/surviveMask may
// address.
func maxNeighborCount(n types.Neighborhood) (int, error) {
	switch n {
	case types.Moore:
		return 8, nil
	case types.VonNeumann:
		return 4, nil
	case types.ExtendedMoore:
		return 24, nil
	case types.Hexagonal:
		return 6, nil
	case types.ExtendedHexagon:
		return 18, nil
	default:
		return 0, fmt.Errorf("rule: unrecognized neighborhood %q", n)
	}
}

// Mask is a bitset over neighbor-count indices: bit k set means count
// k triggers the associated transition.
type Mask uint32

// Set reports whether count k is set in the mask.
func (m Mask) Set(k int) bool {
	if k < 0 || k >= 32 {
		return false
	}
	return m&(1<<uint(k)) != 0
}

// MaskFromCounts builds a Mask from a list of trigger counts.
func MaskFromCounts(counts ...int) Mask {
	var m Mask
	for _, k := range counts {
		if k >= 0 && k < 32 {
			m |= 1 << uint(k)
		}
	}
	return m
}

// Rule is the full immutable rule spec active during a step.
type Rule struct {
	BirthMask    Mask
	SurviveMask  Mask
	NumStates    int
	Neighborhood types.Neighborhood
	Boundary     types.Boundary
	Vitality     []vitality.Anchor // empty/nil means the curve is disabled (flat zero)
}

// New validates and constructs a Rule. All configuration errors are
// surfaced synchronously; on error the caller's previously-valid rule
// (if any) should remain active.
func New(birth, survive Mask, numStates int, neighborhood types.Neighborhood, boundary types.Boundary, anchors []vitality.Anchor) (*Rule, error) {
	if numStates < 2 || numStates > 1024 {
		return nil, fmt.Errorf("rule: numStates must be in [2,1024], got %d", numStates)
	}
	if _, err := maxNeighborCount(neighborhood); err != nil {
		return nil, err
	}
	if err := topologyBoundaryValid(boundary); err != nil {
		return nil, err
	}
	if err := vitality.Validate(anchors); err != nil {
		return nil, err
	}

	return &Rule{
		BirthMask:    birth,
		SurviveMask:  survive,
		NumStates:    numStates,
		Neighborhood: neighborhood,
		Boundary:     boundary,
		Vitality:     anchors,
	}, nil
}

// MaxNeighborCount exposes the neighborhood's neighbor-count ceiling.
func (r *Rule) MaxNeighborCount() int {
	n, _ := maxNeighborCount(r.Neighborhood)
	return n
}

// topologyBoundaryValid is a tiny local check so this package doesn't
// need to import internal/topology just to validate a token; the
// authoritative list lives there and must be kept in sync.
func topologyBoundaryValid(b types.Boundary) error {
	switch b {
	case types.Plane, types.CylinderX, types.CylinderY, types.Torus,
		types.MobiusX, types.MobiusY, types.KleinX, types.KleinY, types.ProjectivePlane:
		return nil
	default:
		return fmt.Errorf("rule: unrecognized boundary %q", b)
	}
}
