// Package topology implements C2, the Topology Resolver: mapping a
// requested (possibly out-of-bounds) coordinate to a valid in-bounds
// cell, or reporting it absent, under one of nine boundary modes.
//
// A boundary mode is modeled as two independent concerns — does the
// axis wrap, and does crossing it once flip the other coordinate —
// with the boundary token validated by Validate().
package topology

import (
	"fmt"

	"github.com/Mahdi-s/games-of-life/internal/types"
)

// axisRule describes one boundary mode's wrap/flip behavior.
type axisRule struct {
	xWraps, yWraps       bool
	xCrossFlipsY         bool
	yCrossFlipsX         bool
}

var rules = map[types.Boundary]axisRule{
	types.Plane:           {false, false, false, false},
	types.CylinderX:       {true, false, false, false},
	types.CylinderY:       {false, true, false, false},
	types.Torus:           {true, true, false, false},
	types.MobiusX:         {true, false, true, false},
	types.MobiusY:         {false, true, false, true},
	types.KleinX:          {true, true, true, false},
	types.KleinY:          {true, true, false, true},
	types.ProjectivePlane: {true, true, true, true},
}

// Validate reports whether b is one of the nine recognized boundary
// tokens.
func Validate(b types.Boundary) error {
	if _, ok := rules[b]; !ok {
		return fmt.Errorf("topology: unrecognized boundary %q", b)
	}
	return nil
}

// Resolver resolves coordinates for one fixed boundary mode and grid
// size. It holds no mutable state and is safe for concurrent use by
// every cell task in a step.
type Resolver struct {
	width, height int
	rule          axisRule
	boundary      types.Boundary
}

// New constructs a Resolver for the given grid size and boundary mode.
func New(width, height int, boundary types.Boundary) (*Resolver, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("topology: dimensions must be positive, got %dx%d", width, height)
	}
	rule, ok := rules[boundary]
	if !ok {
		return nil, fmt.Errorf("topology: unrecognized boundary %q", boundary)
	}
	return &Resolver{width: width, height: height, rule: rule, boundary: boundary}, nil
}

// Boundary reports this resolver's boundary mode.
func (r *Resolver) Boundary() types.Boundary { return r.boundary }

// Resolve maps (x, y) — which may lie outside [0,W) x [0,H) by any
// number of wraps — to an in-bounds (x', y'), or reports ok=false
// ("absent", treated by callers as a dead cell).
func (r *Resolver) Resolve(x, y int) (rx, ry int, ok bool) {
	w, h := r.width, r.height

	var wx, wy int
	if x < 0 || x >= w {
		if !r.rule.xWraps {
			return 0, 0, false
		}
		wx = floorDiv(x, w)
		x = floorMod(x, w)
	}
	if y < 0 || y >= h {
		if !r.rule.yWraps {
			return 0, 0, false
		}
		wy = floorDiv(y, h)
		y = floorMod(y, h)
	}

	if wx%2 != 0 && r.rule.xCrossFlipsY {
		y = h - 1 - y
	}
	if wy%2 != 0 && r.rule.yCrossFlipsX {
		x = w - 1 - x
	}

	return x, y, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
