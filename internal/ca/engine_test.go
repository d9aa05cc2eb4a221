package ca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahdi-s/games-of-life/internal/ca"
	"github.com/Mahdi-s/games-of-life/internal/rule"
	"github.com/Mahdi-s/games-of-life/internal/types"
	"github.com/Mahdi-s/games-of-life/internal/vitality"
)

func conwayRule(t *testing.T, boundary types.Boundary) *rule.Rule {
	t.Helper()
	r, err := rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 2, types.Moore, boundary, nil)
	require.NoError(t, err)
	return r
}

func aliveSet(e *ca.Engine) map[[2]int]bool {
	snap := e.Snapshot()
	out := map[[2]int]bool{}
	for i, s := range snap.Cells {
		if s == int(1) {
			out[[2]int{i % snap.Width, i / snap.Width}] = true
		}
	}
	return out
}

func setAlive(e *ca.Engine, cells [][2]int) {
	for _, c := range cells {
		e.Buffers().Fill(c[0], c[1], c[0]+1, c[1]+1, 1)
	}
}

// S1: blinker on a 5x5 torus oscillates with period 2.
func TestBlinkerOscillatesOnTorus(t *testing.T) {
	e, err := ca.New(5, 5, conwayRule(t, types.Torus))
	require.NoError(t, err)
	setAlive(e, [][2]int{{1, 2}, {2, 2}, {3, 2}})

	require.NoError(t, e.Step())
	assert.Equal(t, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, aliveSet(e))

	require.NoError(t, e.Step())
	assert.Equal(t, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, aliveSet(e))
}

// S2: glider on a 16x16 torus translates by (+1,+1) every 4 steps.
func TestGliderTranslatesOnTorus(t *testing.T) {
	e, err := ca.New(16, 16, conwayRule(t, types.Torus))
	require.NoError(t, err)
	start := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	setAlive(e, start)

	for i := 0; i < 4; i++ {
		require.NoError(t, e.Step())
	}

	want := map[[2]int]bool{}
	for _, c := range start {
		want[[2]int{c[0] + 1, c[1] + 1}] = true
	}
	assert.Equal(t, want, aliveSet(e))
}

// S3: a lone cell on a 5x5 plane dies with no births.
func TestLoneCellDiesOnPlaneEdge(t *testing.T) {
	e, err := ca.New(5, 5, conwayRule(t, types.Plane))
	require.NoError(t, err)
	setAlive(e, [][2]int{{0, 0}})

	require.NoError(t, e.Step())
	assert.Equal(t, 0, e.AliveCount())
}

// S4: a Generations rule with empty birth/survive masks decays
// 1 -> 2 -> 3 -> 0 on a 3x3 plane.
func TestGenerationsDecayChain(t *testing.T) {
	r, err := rule.New(rule.Mask(0), rule.Mask(0), 4, types.Moore, types.Plane, nil)
	require.NoError(t, err)

	e, err := ca.New(3, 3, r)
	require.NoError(t, err)
	setAlive(e, [][2]int{{1, 1}})

	require.NoError(t, e.Step())
	assert.Equal(t, 2, int(e.GetCell(1, 1)))

	require.NoError(t, e.Step())
	assert.Equal(t, 3, int(e.GetCell(1, 1)))

	require.NoError(t, e.Step())
	assert.Equal(t, 0, int(e.GetCell(1, 1)))
}

// S5: hex neighbor counting on a 5x5 plane. The center cell has
// exactly 6 alive hex neighbors and survives; each ring cell has only
// 3 alive hex neighbors (the center and its two ring neighbors) and
// dies.
func TestHexNeighborCountScenario(t *testing.T) {
	r, err := rule.New(rule.MaskFromCounts(6), rule.MaskFromCounts(6), 2, types.Hexagonal, types.Plane, nil)
	require.NoError(t, err)

	e, err := ca.New(5, 5, r)
	require.NoError(t, err)
	setAlive(e, [][2]int{
		{2, 2},
		{2, 1}, {3, 1}, {1, 2}, {3, 2}, {2, 3}, {3, 3},
	})

	require.NoError(t, e.Step())
	assert.Equal(t, map[[2]int]bool{{2, 2}: true}, aliveSet(e))
}

// S6: a decay-state-2 cell's vitality contribution tips the effective
// neighbor count of a marginal cell from 1 (no survive) to 2
// (survives) on a 3x3 torus.
func TestVitalityTipsSurvival(t *testing.T) {
	anchors := []vitality.Anchor{{X: 0, Y: 0}, {X: 1, Y: 2}}
	r, err := rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 4, types.Moore, types.Torus, anchors)
	require.NoError(t, err)

	e, err := ca.New(3, 3, r)
	require.NoError(t, err)
	// Center has one fully-alive neighbor (sum contribution 1) and one
	// fresh decay-state-2 neighbor, whose vitality weight of ~1.3 pushes
	// the truncated effective count to 2, which the survive mask sets;
	// the alive-only contribution of 1 alone would not.
	setAlive(e, [][2]int{{1, 1}, {0, 1}})
	e.Buffers().Fill(1, 0, 2, 1, 2)

	require.NoError(t, e.Step())
	assert.Equal(t, 1, int(e.GetCell(1, 1)))
}

func TestReconfigureSwapsRuleWithoutClearingGrid(t *testing.T) {
	e, err := ca.New(4, 4, conwayRule(t, types.Plane))
	require.NoError(t, err)
	setAlive(e, [][2]int{{0, 0}})

	torusRule := conwayRule(t, types.Torus)
	require.NoError(t, e.Reconfigure(torusRule))

	assert.Equal(t, types.Torus, e.Rule().Boundary)
	assert.Equal(t, 1, e.AliveCount())
}

func TestNewRejectsInvalidRuleUpfront(t *testing.T) {
	bad, err := rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 0, types.Moore, types.Plane, nil)
	assert.Error(t, err)
	assert.Nil(t, bad)
}

func TestResizeClearsGridAndPreservesRule(t *testing.T) {
	e, err := ca.New(4, 4, conwayRule(t, types.Torus))
	require.NoError(t, err)
	setAlive(e, [][2]int{{0, 0}})

	require.NoError(t, e.Resize(6, 6))
	assert.Equal(t, 0, e.AliveCount())
	assert.Equal(t, types.Torus, e.Rule().Boundary)
}
