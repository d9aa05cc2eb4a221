package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahdi-s/games-of-life/internal/rule"
	"github.com/Mahdi-s/games-of-life/internal/types"
	"github.com/Mahdi-s/games-of-life/internal/vitality"
)

func conway(t *testing.T) *rule.Rule {
	t.Helper()
	r, err := rule.New(
		rule.MaskFromCounts(3),
		rule.MaskFromCounts(2, 3),
		2,
		types.Moore,
		types.Plane,
		nil,
	)
	require.NoError(t, err)
	return r
}

func TestMaskFromCountsAndSet(t *testing.T) {
	m := rule.MaskFromCounts(2, 3, 5)
	assert.True(t, m.Set(2))
	assert.True(t, m.Set(3))
	assert.True(t, m.Set(5))
	assert.False(t, m.Set(4))
	assert.False(t, m.Set(-1))
	assert.False(t, m.Set(64))
}

func TestNewConwayRule(t *testing.T) {
	r := conway(t)
	assert.Equal(t, 2, r.NumStates)
	assert.Equal(t, 8, r.MaxNeighborCount())
}

func TestNewRejectsBadNumStates(t *testing.T) {
	_, err := rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 1, types.Moore, types.Plane, nil)
	assert.Error(t, err)

	_, err = rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 2000, types.Moore, types.Plane, nil)
	assert.Error(t, err)
}

func TestNewRejectsUnrecognizedNeighborhood(t *testing.T) {
	_, err := rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 2, types.Neighborhood("bogus"), types.Plane, nil)
	assert.Error(t, err)
}

func TestNewRejectsUnrecognizedBoundary(t *testing.T) {
	_, err := rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 2, types.Moore, types.Boundary("bogus"), nil)
	assert.Error(t, err)
}

func TestNewRejectsInvalidVitalityAnchors(t *testing.T) {
	_, err := rule.New(rule.MaskFromCounts(3), rule.MaskFromCounts(2, 3), 4, types.Moore, types.Plane,
		[]vitality.Anchor{{X: 0.2, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestMaxNeighborCountPerNeighborhood(t *testing.T) {
	cases := map[types.Neighborhood]int{
		types.Moore:           8,
		types.VonNeumann:      4,
		types.ExtendedMoore:   24,
		types.Hexagonal:       6,
		types.ExtendedHexagon: 18,
	}
	for nh, want := range cases {
		r, err := rule.New(rule.MaskFromCounts(2), rule.MaskFromCounts(2), 2, nh, types.Plane, nil)
		require.NoError(t, err)
		assert.Equal(t, want, r.MaxNeighborCount())
	}
}
