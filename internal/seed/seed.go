// Package seed implements the producer side of a seed source: random
// density, centered shapes, a literal grid, and named patterns
// (optionally tiled), via a pattern registry and a shape rasterizer
// any rule/lattice combination can use.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/Mahdi-s/games-of-life/internal/grid"
	"github.com/Mahdi-s/games-of-life/internal/types"
)

// RandomDensity seeds the grid per C1's randomize operation: each cell
// independently Alive with probability density; when includeDecay is
// set and numStates > 2, ~20% of the remaining cells get a uniform
// random decay state.
func RandomDensity(g *grid.Buffers, density float64, includeDecay bool, numStates int, rng *rand.Rand) {
	g.Randomize(density, includeDecay, numStates, rng)
}

// patterns maps a named pattern to the relative (dx, dy) offsets of
// its Alive cells, anchored so (0,0) is a sensible stamping origin.
var patterns = map[string][][2]int{
	"blinker": {{-1, 0}, {0, 0}, {1, 0}},
	"glider":  {{1, -1}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"beacon":  {{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	"toad":    {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// NamedPattern stamps a registered pattern at (originX, originY),
// optionally tiled across the grid at (tileSpacingX, tileSpacingY)
// when either spacing is positive. A spacing of 0 stamps exactly once.
func NamedPattern(g *grid.Buffers, name string, originX, originY, tileSpacingX, tileSpacingY int) error {
	cells, ok := patterns[name]
	if !ok {
		return fmt.Errorf("seed: unrecognized pattern %q", name)
	}

	stepX, stepY := tileSpacingX, tileSpacingY
	if stepX <= 0 {
		stepX = g.Width()
	}
	if stepY <= 0 {
		stepY = g.Height()
	}

	for oy := originY; oy < g.Height(); oy += stepY {
		for ox := originX; ox < g.Width(); ox += stepX {
			for _, c := range cells {
				x, y := ox+c[0], oy+c[1]
				if x >= 0 && x < g.Width() && y >= 0 && y < g.Height() {
					g.Fill(x, y, x+1, y+1, grid.Alive)
				}
			}
			if tileSpacingX <= 0 {
				break
			}
		}
		if tileSpacingY <= 0 {
			break
		}
	}
	return nil
}

// LiteralGrid overwrites the front buffer from an explicit rows[y][x]
// state matrix, which must match the buffer's dimensions exactly.
func LiteralGrid(g *grid.Buffers, rows [][]grid.State) error {
	if len(rows) != g.Height() {
		return fmt.Errorf("seed: literal grid has %d rows, want %d", len(rows), g.Height())
	}
	for y, row := range rows {
		if len(row) != g.Width() {
			return fmt.Errorf("seed: literal grid row %d has %d cols, want %d", y, len(row), g.Width())
		}
		for x, s := range row {
			g.Fill(x, y, x+1, y+1, s)
		}
	}
	return nil
}

// CenteredShape stamps a filled disk, ring, or cross of the given
// state, centered on the grid and sized by radius.
func CenteredShape(g *grid.Buffers, shape types.Shape, radius int, state grid.State) error {
	cx, cy := g.Width()/2, g.Height()/2
	switch shape {
	case types.Disk:
		forEachInRadius(g, cx, cy, radius, func(x, y int) {
			g.Fill(x, y, x+1, y+1, state)
		})
	case types.Ring:
		forEachInRadius(g, cx, cy, radius, func(x, y int) {
			dx, dy := x-cx, y-cy
			d2 := dx*dx + dy*dy
			if d2 > (radius-1)*(radius-1) {
				g.Fill(x, y, x+1, y+1, state)
			}
		})
	case types.Cross:
		for x := cx - radius; x <= cx+radius; x++ {
			if x >= 0 && x < g.Width() {
				g.Fill(x, cy, x+1, cy+1, state)
			}
		}
		for y := cy - radius; y <= cy+radius; y++ {
			if y >= 0 && y < g.Height() {
				g.Fill(cx, y, cx+1, y+1, state)
			}
		}
	default:
		return fmt.Errorf("seed: unrecognized shape %q", shape)
	}
	return nil
}

func forEachInRadius(g *grid.Buffers, cx, cy, radius int, fn func(x, y int)) {
	for y := cy - radius; y <= cy+radius; y++ {
		if y < 0 || y >= g.Height() {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= g.Width() {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				fn(x, y)
			}
		}
	}
}
