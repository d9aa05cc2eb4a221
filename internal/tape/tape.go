// Package tape defines the persistence format a tape collaborator
// would use: each frame is a bitset of the alive/dead (s==1)
// projection, the generation number, and optional per-cell metrics.
package tape

import (
	"math/bits"

	"github.com/google/uuid"

	"github.com/Mahdi-s/games-of-life/internal/grid"
	"github.com/Mahdi-s/games-of-life/internal/types"
)

// Pack projects a snapshot onto a bitset: bit i set means cell i was
// Alive. Decay states (s >= 2) pack as 0, same as Dead; the format is
// lossy for anything beyond a binary alive/dead projection.
func Pack(snapshot []grid.State) []byte {
	out := make([]byte, (len(snapshot)+7)/8)
	for i, s := range snapshot {
		if s == grid.Alive {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// Unpack expands a packed bitset back into n cell states (0 or 1
// only — the alive/dead projection, never a decay state).
func Unpack(packed []byte, n int) []grid.State {
	out := make([]grid.State, n)
	for i := 0; i < n; i++ {
		byteIdx, bitIdx := i/8, uint(i%8)
		if byteIdx < len(packed) && packed[byteIdx]&(1<<bitIdx) != 0 {
			out[i] = grid.Alive
		}
	}
	return out
}

// PopCount returns the number of set bits in a packed bitset, useful
// for a tape collaborator to report alive counts without unpacking.
func PopCount(packed []byte) int {
	count := 0
	for _, b := range packed {
		count += bits.OnesCount8(b)
	}
	return count
}

// NewFrame builds a persistence-format Frame from a snapshot, stamped
// with a fresh export id so a tape collaborator can deduplicate
// retransmitted frames.
func NewFrame(width, height, generation int, snapshot []grid.State, metrics []byte) types.Frame {
	return types.Frame{
		ID:         uuid.NewString(),
		Generation: generation,
		Width:      width,
		Height:     height,
		Bits:       Pack(snapshot),
		Metrics:    metrics,
	}
}
