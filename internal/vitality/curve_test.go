package vitality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mahdi-s/games-of-life/internal/vitality"
)

func TestValidateEmptyAndNilAreAllowed(t *testing.T) {
	assert.NoError(t, vitality.Validate(nil))
	assert.NoError(t, vitality.Validate([]vitality.Anchor{}))
}

func TestValidateRejectsSingleAnchor(t *testing.T) {
	err := vitality.Validate([]vitality.Anchor{{X: 0, Y: 1}})
	assert.Error(t, err)
}

func TestValidateRequiresEndpointsAtZeroAndOne(t *testing.T) {
	err := vitality.Validate([]vitality.Anchor{{X: 0.1, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)

	err = vitality.Validate([]vitality.Anchor{{X: 0, Y: 0}, {X: 0.9, Y: 1}})
	assert.Error(t, err)
}

func TestValidateRequiresStrictlyIncreasingX(t *testing.T) {
	err := vitality.Validate([]vitality.Anchor{{X: 0, Y: 0}, {X: 0.5, Y: 1}, {X: 0.5, Y: 1}, {X: 1, Y: 2}})
	assert.Error(t, err)
}

func TestValidateRejectsOutOfRangeY(t *testing.T) {
	err := vitality.Validate([]vitality.Anchor{{X: 0, Y: -3}, {X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestBakeWithFewerThanTwoAnchorsIsFlatZero(t *testing.T) {
	table := vitality.Bake(nil)
	for _, v := range table {
		assert.Equal(t, 0.0, v)
	}
}

func TestBakeLinearlyInterpolatesBetweenAnchors(t *testing.T) {
	anchors := []vitality.Anchor{{X: 0, Y: 0}, {X: 1, Y: 1}}
	table := vitality.Bake(anchors)

	assert.InDelta(t, 0.0, table[0], 1e-9)
	assert.InDelta(t, 1.0, table[vitality.TableSize-1], 1e-9)
	mid := table[vitality.TableSize/2]
	assert.InDelta(t, 0.5, mid, 0.01)
}

func TestBakeHoldsFlatAtMultiSegmentEndpoints(t *testing.T) {
	anchors := []vitality.Anchor{{X: 0, Y: 2}, {X: 0.5, Y: -1}, {X: 1, Y: 2}}
	table := vitality.Bake(anchors)

	assert.InDelta(t, 2.0, table[0], 1e-9)
	// Sample 64 sits at x = 64/127, just past the middle anchor, on the
	// rising segment from (0.5,-1) to (1,2).
	mid := table[vitality.TableSize/2]
	assert.InDelta(t, -1.0+3.0*(64.0/127.0-0.5)/0.5, mid, 1e-9)
	assert.InDelta(t, 2.0, table[vitality.TableSize-1], 1e-9)
}

func TestSampleClampsOutOfRangeInput(t *testing.T) {
	anchors := []vitality.Anchor{{X: 0, Y: 0}, {X: 1, Y: 1}}
	table := vitality.Bake(anchors)

	assert.Equal(t, table[0], table.Sample(-1))
	assert.Equal(t, table[vitality.TableSize-1], table.Sample(2))
}
