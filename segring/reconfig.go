// File: segring/reconfig.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Live reconfiguration. ChangeConfiguration preserves retained items by
// moving whole segments into the new layout, so their addresses survive.
// DiscardAndChangeConfiguration is a hard reset: it validates first and
// mutates nothing on failure.

package segring

import (
	"unsafe"

	"github.com/momentics/largering/api"
	"github.com/momentics/largering/internal/memquota"
	"github.com/momentics/largering/pool"
)

// segmentSizeTiers drive automatic segment sizing: the largest tier
// wins whose squared size fits under the capacity and whose byte
// footprint fits the per-segment budget.
var segmentSizeTiers = [...]int{10000, 1000, 100, 10}

// autoSegmentSize picks items-per-segment for a logical capacity. The
// exact tiers are a tuning choice for logging-style workloads, not part
// of the contract.
func autoSegmentSize[T any](capacity int) int {
	itemSize := int(unsafe.Sizeof(*new(T)))
	if itemSize == 0 {
		itemSize = 1
	}
	budget := memquota.SegmentByteBudget()
	for _, tier := range segmentSizeTiers {
		if capacity >= tier*tier && itemSize*tier <= budget {
			return tier
		}
	}
	return segmentSizeTiers[len(segmentSizeTiers)-1]
}

// ChangeConfiguration resizes the logical capacity in place. Surplus
// items are evicted from the back until the new capacity fits. The
// segment size is kept once set; it is chosen heuristically only from
// the unconfigured state. Retained items keep their addresses: segments
// holding them are moved, and the segment count is raised above
// ceil(capacity/segmentSize) when the occupied span needs it. The one
// case that copies is a grow while the occupied range wraps through its
// own start segment; see migrate.
func (r *Ring[T]) ChangeConfiguration(capacity int, fixedAllocation, preallocate bool) {
	if r.clear == nil {
		r.clear = NoopClearHandler[T]{}
	}
	if capacity < 0 {
		capacity = 0
	}
	for r.count > capacity {
		r.PopBack()
	}

	segSize := r.segSize
	if segSize == 0 {
		segSize = autoSegmentSize[T](capacity)
	}
	segCount := 0
	if capacity > 0 {
		segCount = (capacity + segSize - 1) / segSize
	}
	span := r.occupiedSegmentSpan()
	if n := len(r.segments); span > n {
		// The occupied range wraps through its own start segment; the
		// current n segments already hold it circularly.
		span = n
	}
	if span > segCount {
		// Physical capacity may exceed the logical one; this keeps the
		// retained span movable as whole segments.
		segCount = span
	}

	if segCount != len(r.segments) || segSize != r.segSize {
		r.migrate(segCount, segSize)
	}
	r.capacity = capacity
	r.fixedAlloc = fixedAllocation
	if preallocate {
		r.preallocateAll()
	}
}

// migrate rebuilds the segment array for a new segment count, moving
// the backing arrays of segments that hold retained items. The new
// start keeps its in-segment offset, so retained items keep their
// addresses, with one exception: when the occupied range wraps through
// its own start segment, the wrapped tail (fewer than one segment of
// items) cannot travel with a whole segment and is copied into a fresh
// one. A segment size change is only possible from the unconfigured
// state, where nothing is retained.
func (r *Ring[T]) migrate(segCount, segSize int) {
	newSegments := make([][]T, segCount)
	if r.count > 0 {
		n := len(r.segments)
		off := r.start % r.segSize
		span := r.occupiedSegmentSpan()
		move := span
		if move > n {
			move = n
		}
		seg := r.start / r.segSize
		for i := 0; i < move; i++ {
			newSegments[i] = r.segments[seg]
			r.segments[seg] = nil
			seg = nextSeg(seg, n)
		}
		if span > n {
			// The first off+count-n*segSize slots of the start segment
			// hold the back of the range. Copy them to the linear tail
			// position and zero the vacated source slots.
			tail := off + r.count - n*r.segSize
			dst := r.recycle.Get()
			copy(dst, newSegments[0][:tail])
			var zero T
			for i := range newSegments[0][:tail] {
				newSegments[0][i] = zero
			}
			newSegments[n] = dst
		}
		r.start = off
	} else {
		r.start = 0
	}

	// Whatever did not move is parked for reuse.
	for i := range r.segments {
		r.release(i)
	}
	if segSize != r.segSize || r.recycle == nil {
		r.recycle = pool.NewSegmentPool[T](segSize, defaultRetainedSegments)
	}
	r.segments = newSegments
	r.segSize = segSize
	r.physCap = segCount * segSize
	if r.physCap > 0 {
		r.end = (r.start + r.count) % r.physCap
	} else {
		r.end = 0
	}
}

// DiscardAndChangeConfiguration destroys all items and storage without
// invoking the clear strategy and applies a fresh configuration. The
// requested configuration is validated before any mutation; on error
// the ring is left untouched.
func (r *Ring[T]) DiscardAndChangeConfiguration(segmentCount, segmentSize, capacity int, fixedAllocation, preallocate bool) error {
	if segmentCount < 0 || segmentSize < 0 || capacity < 0 {
		return api.NewError(api.ErrCodeInvalidConfiguration, "negative ring configuration").
			WithContext("segment_count", segmentCount).
			WithContext("segment_size", segmentSize).
			WithContext("capacity", capacity)
	}
	if segmentSize == 0 || capacity == 0 {
		segmentCount, segmentSize, capacity = 0, 0, 0
	} else {
		if segmentCount == 0 {
			segmentCount = (capacity + segmentSize - 1) / segmentSize
		}
		if capacity > segmentCount*segmentSize {
			return api.NewError(api.ErrCodeInvalidConfiguration, "capacity exceeds segment storage").
				WithContext("segment_count", segmentCount).
				WithContext("segment_size", segmentSize).
				WithContext("capacity", capacity)
		}
	}

	if r.clear == nil {
		r.clear = NoopClearHandler[T]{}
	}
	r.segments = make([][]T, segmentCount)
	r.segSize = segmentSize
	r.physCap = segmentCount * segmentSize
	r.capacity = capacity
	r.start, r.end, r.count = 0, 0, 0
	r.fixedAlloc = fixedAllocation
	r.recycle = pool.NewSegmentPool[T](segmentSize, defaultRetainedSegments)
	if preallocate {
		r.preallocateAll()
	}
	return nil
}

// Discard resets the ring to the unconfigured zero-capacity state,
// dropping all items, storage, the segment size and the
// fixed-allocation flag.
func (r *Ring[T]) Discard() {
	_ = r.DiscardAndChangeConfiguration(0, 0, 0, false, false)
}
