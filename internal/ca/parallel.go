// parallel.go dispatches one generation's worth of cell evaluation
// data-parallel across row tiles: rows are ceiling-divided across
// NumCPU workers and joined with an errgroup before the buffer pair
// commits.
package ca

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Mahdi-s/games-of-life/internal/neighbor"
	"github.com/Mahdi-s/games-of-life/internal/rule"
)

func defaultWorkerCount() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// SetWorkerCount overrides the tile count used by Step. Intended for
// tests that want deterministic single-threaded evaluation and for
// operators tuning throughput; safe to call between steps only.
func (e *Engine) SetWorkerCount(n int) {
	if n < 1 {
		n = 1
	}
	e.mu.Lock()
	e.workers = n
	e.mu.Unlock()
}

// Step advances the simulation by one generation: every cell's next
// state is computed from the current front buffer with no
// inter-cell dependency (§5), then the buffer pair is committed
// atomically. Must not be called concurrently with itself or with
// Reconfigure/Resize.
func (e *Engine) Step() error {
	e.mu.RLock()
	r := e.rule
	agg := e.agg
	workers := e.workers
	e.mu.RUnlock()

	if r == nil || agg == nil {
		return errNotConfigured
	}

	width, height := e.buf.Width(), e.buf.Height()
	if workers > height {
		workers = height
	}
	rowsPerWorker := (height + workers - 1) / workers

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > height {
			endRow = height
		}
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			e.stepRows(r, agg, startRow, endRow, width)
			return nil
		})
	}
	_ = eg.Wait() // step tiles never return an error; kept for the errgroup idiom

	e.buf.CommitStep()
	return nil
}

// stepRows evaluates rows [startRow, endRow) of the front buffer into
// the back buffer. Disjoint row ranges across workers make this
// data-race-free by construction: each index is written by exactly
// one goroutine.
func (e *Engine) stepRows(r *rule.Rule, agg *neighbor.Aggregator, startRow, endRow, width int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < width; x++ {
			i := e.buf.Index(x, y)
			s := e.buf.ReadFront(i)
			n := agg.Count(e.buf, x, y)
			e.buf.WriteBack(i, transition(r, s, n))
		}
	}
}
