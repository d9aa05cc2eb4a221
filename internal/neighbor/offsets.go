package neighbor

import "github.com/Mahdi-s/games-of-life/internal/types"

// offset is a relative (dx, dy) neighbor displacement.
type offset struct{ dx, dy int }

// squareOffsets returns the fixed offset templates for the three
// square lattices; they do not depend on row parity.
func squareOffsets(n types.Neighborhood) []offset {
	switch n {
	case types.Moore:
		return []offset{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 0}, {1, 0},
			{-1, 1}, {0, 1}, {1, 1},
		}
	case types.VonNeumann:
		return []offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	case types.ExtendedMoore:
		offs := make([]offset, 0, 24)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				offs = append(offs, offset{dx, dy})
			}
		}
		return offs
	default:
		return nil
	}
}

// cube is an axial/cube hex coordinate (x+y+z == 0 always).
type cube struct{ x, y, z int }

// cubeDirections are the 6 unit steps around a hex cell.
var cubeDirections = [6]cube{
	{1, 0, -1}, {1, -1, 0}, {0, -1, 1},
	{-1, 0, 1}, {-1, 1, 0}, {0, 1, -1},
}

// offsetToCube converts odd-r offset coordinates to cube coordinates.
// The shift uses row+1's parity rather than row's own, so that row 0
// shifts right and row 1 shifts left (verified against the hex
// neighbor-count test's concrete alive/dead outcome).
func offsetToCube(col, row int) cube {
	x := col - floorDiv2(row+1)
	z := row
	y := -x - z
	return cube{x, y, z}
}

// cubeToOffset is offsetToCube's inverse.
func cubeToOffset(c cube) (col, row int) {
	col = c.x + floorDiv2(c.z+1)
	row = c.z
	return col, row
}

func floorMod2(v int) int {
	m := v % 2
	if m < 0 {
		m += 2
	}
	return m
}

// floorDiv2 is floor(v/2), correct for negative v (unlike Go's
// truncating integer division).
func floorDiv2(v int) int {
	return (v - floorMod2(v)) / 2
}

// cubeAdd adds two cube coordinates.
func cubeAdd(a, b cube) cube { return cube{a.x + b.x, a.y + b.y, a.z + b.z} }

// cubeScale scales a cube coordinate by k.
func cubeScale(a cube, k int) cube { return cube{a.x * k, a.y * k, a.z * k} }

// cubeRing returns the 6*radius cube coordinates at exactly the given
// cube distance from center (radius >= 1).
func cubeRing(center cube, radius int) []cube {
	ring := make([]cube, 0, 6*radius)
	c := cubeAdd(center, cubeScale(cubeDirections[4], radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			ring = append(ring, c)
			c = cubeAdd(c, cubeDirections[side])
		}
	}
	return ring
}

// hexOffsets returns the neighbor offsets for a cell at row y, for
// either the 6-neighbor hexagonal lattice or the 18-neighbor extended
// hexagonal lattice (inner ring + distance-2 outer ring). Offsets are
// relative to (0, y) and therefore already account for that row's
// parity.
func hexOffsets(n types.Neighborhood, y int) []offset {
	center := offsetToCube(0, y)
	rings := []int{1}
	if n == types.ExtendedHexagon {
		rings = append(rings, 2)
	}

	offs := make([]offset, 0, 18)
	for _, radius := range rings {
		for _, c := range cubeRing(center, radius) {
			col, row := cubeToOffset(c)
			offs = append(offs, offset{col, row - y})
		}
	}
	return offs
}

// templateFor returns the full neighbor offset list for the given
// lattice at row y (row only matters for the hex lattices).
func templateFor(n types.Neighborhood, y int) ([]offset, error) {
	switch n {
	case types.Moore, types.VonNeumann, types.ExtendedMoore:
		return squareOffsets(n), nil
	case types.Hexagonal, types.ExtendedHexagon:
		return hexOffsets(n, y), nil
	default:
		return nil, errUnrecognizedNeighborhood(n)
	}
}
