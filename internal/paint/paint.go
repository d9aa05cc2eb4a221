// Package paint implements the producer side of a paint request:
// between steps, a host may stamp a shaped region of the front buffer
// with a given state at a given per-cell probability. Circle
// membership uses a squared cell-to-center distance test; square
// membership is a Chebyshev-radius bounding box.
package paint

import (
	"math/rand"

	"github.com/Mahdi-s/games-of-life/internal/grid"
	"github.com/Mahdi-s/games-of-life/internal/types"
)

// Request describes one paint operation.
type Request struct {
	CenterX, CenterY int
	Radius           int
	State            grid.State
	Shape            types.Shape // Circle or Square
	Density          float64     // per-cell write probability in [0,1]
}

// Apply writes req.State into every cell of req's shape with
// probability req.Density, into g's front buffer.
func Apply(g *grid.Buffers, req Request, rng *rand.Rand) {
	x0, x1 := req.CenterX-req.Radius, req.CenterX+req.Radius
	y0, y1 := req.CenterY-req.Radius, req.CenterY+req.Radius

	for y := y0; y <= y1; y++ {
		if y < 0 || y >= g.Height() {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= g.Width() {
				continue
			}
			if !inShape(req, x, y) {
				continue
			}
			if req.Density >= 1 || rng.Float64() < req.Density {
				g.Fill(x, y, x+1, y+1, req.State)
			}
		}
	}
}

func inShape(req Request, x, y int) bool {
	switch req.Shape {
	case types.Square:
		return true // already bounded to the Chebyshev box by the caller's loop
	default: // Circle
		dx, dy := x-req.CenterX, y-req.CenterY
		return dx*dx+dy*dy <= req.Radius*req.Radius
	}
}
