package neighbor

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahdi-s/games-of-life/internal/types"
)

func sortedOffsets(offs []offset) []offset {
	out := append([]offset(nil), offs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].dy != out[j].dy {
			return out[i].dy < out[j].dy
		}
		return out[i].dx < out[j].dx
	})
	return out
}

// Both of the following are cross-checked against the concrete hex
// neighbor set used by the kernel's hex scenario test.

func TestHexOffsetsRowZeroUsesRightShiftedPairs(t *testing.T) {
	// y=0 (spec's row 1, odd): (0,±1) + (+1,±1) + (±1,0).
	want := sortedOffsets([]offset{
		{0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{0, 1}, {1, 1},
	})
	got := sortedOffsets(hexOffsets(types.Hexagonal, 0))
	assert.Equal(t, want, got)
}

func TestHexOffsetsRowOneUsesLeftShiftedPairs(t *testing.T) {
	// y=1 (spec's row 2, even): (-1,±1) + (0,±1) + (±1,0).
	want := sortedOffsets([]offset{
		{-1, -1}, {0, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1},
	})
	got := sortedOffsets(hexOffsets(types.Hexagonal, 1))
	assert.Equal(t, want, got)
}

func TestHexOffsetsSameParityRowsMatch(t *testing.T) {
	assert.Equal(t, sortedOffsets(hexOffsets(types.Hexagonal, 0)), sortedOffsets(hexOffsets(types.Hexagonal, 2)))
	assert.Equal(t, sortedOffsets(hexOffsets(types.Hexagonal, 1)), sortedOffsets(hexOffsets(types.Hexagonal, 3)))
}

func TestExtendedHexagonHas18Neighbors(t *testing.T) {
	offs := hexOffsets(types.ExtendedHexagon, 0)
	assert.Len(t, offs, 18)

	// The extended lattice's inner ring must still match the plain
	// 6-neighbor set exactly.
	inner := sortedOffsets([]offset{
		{0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{0, 1}, {1, 1},
	})
	var gotInner []offset
	for _, o := range offs {
		if o.dx*o.dx+o.dy*o.dy <= 2 {
			gotInner = append(gotInner, o)
		}
	}
	assert.Equal(t, inner, sortedOffsets(gotInner))
}

func TestSquareOffsetsCounts(t *testing.T) {
	assert.Len(t, squareOffsets(types.Moore), 8)
	assert.Len(t, squareOffsets(types.VonNeumann), 4)
	assert.Len(t, squareOffsets(types.ExtendedMoore), 24)
}

func TestTemplateForRejectsUnrecognizedNeighborhood(t *testing.T) {
	_, err := templateFor(types.Neighborhood("bogus"), 0)
	assert.Error(t, err)
}

func TestOffsetToCubeRoundTrip(t *testing.T) {
	for row := -5; row <= 5; row++ {
		for col := -5; col <= 5; col++ {
			c := offsetToCube(col, row)
			gotCol, gotRow := cubeToOffset(c)
			require.Equal(t, col, gotCol, "row=%d col=%d", row, col)
			require.Equal(t, row, gotRow, "row=%d col=%d", row, col)
		}
	}
}
