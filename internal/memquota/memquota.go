// File: internal/memquota/memquota.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-segment byte budget for automatic segment sizing. The budget is
// 1 MiB and is scaled down, never up, on memory-constrained hosts so a
// single segment cannot dominate a small system.

package memquota

import "sync"

const (
	// DefaultSegmentByteBudget bounds the storage footprint of one
	// segment chosen by the automatic sizing heuristic.
	DefaultSegmentByteBudget = 1 << 20

	// minSegmentByteBudget is the floor applied when scaling down.
	minSegmentByteBudget = 64 << 10

	// memoryFraction divides total system memory to derive the budget
	// cap on small hosts.
	memoryFraction = 1024
)

var segmentByteBudget = sync.OnceValue(func() int {
	total := totalSystemMemory()
	if total == 0 {
		// Probe unavailable on this platform, keep the default.
		return DefaultSegmentByteBudget
	}
	budget := total / memoryFraction
	if budget >= DefaultSegmentByteBudget {
		return DefaultSegmentByteBudget
	}
	if budget < minSegmentByteBudget {
		return minSegmentByteBudget
	}
	return int(budget)
})

// SegmentByteBudget returns the byte budget one segment may occupy.
// The value is probed once and cached for the process lifetime.
func SegmentByteBudget() int {
	return segmentByteBudget()
}
