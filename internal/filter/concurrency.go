package filter

import "runtime"

const (
	// ParallelThreshold is the minimum number of queries ParseAll parses concurrently.
	// Below it goroutine overhead dominates, since a single parse is bounded and fast.
	ParallelThreshold = 64

	maxWorkers = 8
)

// DisableParallelization forces ParseAll to parse serially, e.g. for deterministic benchmarks.
var DisableParallelization bool

// WorkerPoolSize returns the number of goroutines ParseAll uses, capped to avoid excessive
// context switching.
func WorkerPoolSize() int {
	return min(runtime.NumCPU(), maxWorkers)
}

// shouldUseParallelization returns true if a batch of the given size should be parsed concurrently.
func shouldUseParallelization(count int) bool {
	return !DisableParallelization && count >= ParallelThreshold
}
