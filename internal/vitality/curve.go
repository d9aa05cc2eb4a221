// Package vitality implements C4, the Vitality Curve: a piecewise-
// linear map from normalized cell age to signed influence weight,
// pre-baked into a fixed sampling table consulted by the neighbor
// aggregator (C3).
package vitality

import "fmt"

// TableSize is the number of samples baked from the anchor sequence.
// 128 is not load-bearing; any power of two between 64 and 512
// preserves the observable semantics.
const TableSize = 128

// Anchor is one control point (x, y) of the curve. x must be in [0,1],
// y must be in [-2,2].
type Anchor struct {
	X float64
	Y float64
}

// Table is the baked sample table V[0..TableSize-1].
type Table [TableSize]float64

// Validate checks that anchors are strictly increasing in X, start at
// 0, end at 1, and stay within [-2,2] in Y. A curve with fewer than
// two anchors is valid and bakes to the flat-zero table.
func Validate(anchors []Anchor) error {
	if len(anchors) == 0 {
		return nil
	}
	if len(anchors) == 1 {
		return fmt.Errorf("vitality: a single anchor is not strictly monotone; use zero or two-or-more anchors")
	}
	if anchors[0].X != 0 {
		return fmt.Errorf("vitality: first anchor x must be 0, got %v", anchors[0].X)
	}
	if anchors[len(anchors)-1].X != 1 {
		return fmt.Errorf("vitality: last anchor x must be 1, got %v", anchors[len(anchors)-1].X)
	}
	for i, a := range anchors {
		if a.Y < -2 || a.Y > 2 {
			return fmt.Errorf("vitality: anchor %d y=%v out of [-2,2]", i, a.Y)
		}
		if i > 0 && a.X <= anchors[i-1].X {
			return fmt.Errorf("vitality: anchors must be strictly increasing in x, anchor %d (%v) <= anchor %d (%v)", i, a.X, i-1, anchors[i-1].X)
		}
	}
	return nil
}

// Bake computes the 128-entry sampling table from the anchor sequence.
// Anchors are assumed already sorted by X and validated. Samples index
// k in [0, TableSize) map to x = k/(TableSize-1); interpolation
// between the bracketing anchor segment is linear; extrapolation
// beyond either endpoint is flat-hold. Fewer than two anchors bakes to
// an all-zero table (vitality disabled).
func Bake(anchors []Anchor) Table {
	var table Table
	if len(anchors) < 2 {
		return table
	}

	seg := 0
	for k := 0; k < TableSize; k++ {
		x := float64(k) / float64(TableSize-1)

		for seg < len(anchors)-2 && x > anchors[seg+1].X {
			seg++
		}

		a, b := anchors[seg], anchors[seg+1]
		switch {
		case x <= a.X:
			table[k] = a.Y
		case x >= b.X:
			table[k] = b.Y
		default:
			t := (x - a.X) / (b.X - a.X)
			table[k] = (1-t)*a.Y + t*b.Y
		}
	}
	return table
}

// Sample looks up the table entry for normalized age v in [0,1],
// clamping the index into range.
func (t Table) Sample(v float64) float64 {
	k := int(v * float64(TableSize-1))
	if k < 0 {
		k = 0
	}
	if k >= TableSize {
		k = TableSize - 1
	}
	return t[k]
}
