// SPDX-License-Identifier: MIT

// Package tensor - bounded fan-out over index ranges.

package tensor

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the minimum number of indices handed to one worker.
// Below it the range runs on the calling goroutine.
const DefaultGrain = 256

// ParallelRange calls fn(lo, hi) over contiguous sub-ranges covering [0, n).
//
// Implementation:
//   - Stage 1: n <= grain or workers == 1 ⇒ fn(0, n) inline.
//   - Stage 2: split into at most `workers` chunks of >= grain indices and run
//     them on an errgroup limited to `workers` goroutines.
//
// Inputs:
//   - n: number of indices (n <= 0 is a no-op).
//   - workers: pool bound; <= 0 selects runtime.GOMAXPROCS(0).
//   - grain: minimum chunk length; <= 0 selects DefaultGrain.
//   - fn: must only write state owned by its [lo, hi) range.
//
// Determinism:
//   - Chunk boundaries never change per-index results when fn is per-index pure.
func ParallelRange(n, workers, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if grain <= 0 {
		grain = DefaultGrain
	}
	if workers == 1 || n <= grain {
		fn(0, n)
		return
	}

	chunks := (n + grain - 1) / grain
	if chunks > workers {
		chunks = workers
	}
	step := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += step {
		hi := min(lo+step, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}
