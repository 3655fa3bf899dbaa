// Package fake
// Author: momentics <momentics@gmail.com>
//
// Slice-backed fake implementation of api.LargeRing for testing
// consumers. It honors the behavioral contract (capacity, eviction,
// ordering, clear strategy) but not the address-stability guarantee:
// item addresses move on every mutation. Use it to test code that
// consumes the interface, not code that caches item pointers.

package fake

import (
	"github.com/momentics/largering/api"
)

// Ensure compile-time interface compliance.
var _ api.LargeRing[any] = (*Ring[any])(nil)

// Ring is a fake api.LargeRing backed by a plain slice.
type Ring[T any] struct {
	items       []T
	capacity    int
	segmentSize int
	fixedAlloc  bool
	clear       api.ClearHandler[T]
}

// NewRing creates a fake ring with the given logical capacity.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{capacity: capacity, segmentSize: capacity, clear: nil}
}

// SetClearHandler installs a clear strategy, mirroring the real ring's
// construction option.
func (r *Ring[T]) SetClearHandler(h api.ClearHandler[T]) {
	r.clear = h
}

func (r *Ring[T]) clearItem(item *T) {
	if r.clear != nil {
		r.clear.Clear(item)
	}
}

func (r *Ring[T]) Len() int                     { return len(r.items) }
func (r *Ring[T]) Empty() bool                  { return len(r.items) == 0 }
func (r *Ring[T]) Full() bool                   { return r.capacity > 0 && len(r.items) == r.capacity }
func (r *Ring[T]) MaxSize() int                 { return r.capacity }
func (r *Ring[T]) SegmentSize() int             { return r.segmentSize }
func (r *Ring[T]) FixedSegmentAllocation() bool { return r.fixedAlloc }

// SegmentCount reports a single segment: the fake keeps everything in
// one slice.
func (r *Ring[T]) SegmentCount() int {
	if r.capacity == 0 {
		return 0
	}
	return 1
}

func (r *Ring[T]) UsedSegments() int {
	if len(r.items) == 0 {
		return 0
	}
	return 1
}

func (r *Ring[T]) PushBack(item T) {
	*r.ExtendBack() = item
}

func (r *Ring[T]) PushFront(item T) {
	*r.ExtendFront() = item
}

func (r *Ring[T]) ExtendBack() *T {
	if r.capacity == 0 {
		panic("fake: ExtendBack on zero-capacity ring")
	}
	if len(r.items) == r.capacity {
		r.clearItem(&r.items[0])
		r.items = r.items[1:]
	}
	var zero T
	r.items = append(r.items, zero)
	return &r.items[len(r.items)-1]
}

func (r *Ring[T]) ExtendFront() *T {
	if r.capacity == 0 {
		panic("fake: ExtendFront on zero-capacity ring")
	}
	if len(r.items) == r.capacity {
		r.clearItem(&r.items[len(r.items)-1])
		r.items = r.items[:len(r.items)-1]
	}
	var zero T
	r.items = append([]T{zero}, r.items...)
	return &r.items[0]
}

func (r *Ring[T]) PopBack() {
	if len(r.items) == 0 {
		panic("fake: PopBack on empty ring")
	}
	r.clearItem(&r.items[len(r.items)-1])
	r.items = r.items[:len(r.items)-1]
}

func (r *Ring[T]) PopFront() {
	if len(r.items) == 0 {
		panic("fake: PopFront on empty ring")
	}
	r.clearItem(&r.items[0])
	r.items = r.items[1:]
}

func (r *Ring[T]) Clear() {
	for i := range r.items {
		r.clearItem(&r.items[i])
	}
	r.items = nil
}

func (r *Ring[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(r.items) {
		return nil, api.NewError(api.ErrCodeOutOfRange, "ring index out of bounds").
			WithContext("index", i).
			WithContext("size", len(r.items))
	}
	return &r.items[i], nil
}

func (r *Ring[T]) Get(i int) *T { return &r.items[i] }

func (r *Ring[T]) Front() *T {
	if len(r.items) == 0 {
		panic("fake: Front on empty ring")
	}
	return &r.items[0]
}

func (r *Ring[T]) Back() *T {
	if len(r.items) == 0 {
		panic("fake: Back on empty ring")
	}
	return &r.items[len(r.items)-1]
}

func (r *Ring[T]) ChangeConfiguration(capacity int, fixedAllocation, preallocate bool) {
	if capacity < 0 {
		capacity = 0
	}
	for len(r.items) > capacity {
		r.PopBack()
	}
	r.capacity = capacity
	r.segmentSize = capacity
	r.fixedAlloc = fixedAllocation
}

func (r *Ring[T]) DiscardAndChangeConfiguration(segmentCount, segmentSize, capacity int, fixedAllocation, preallocate bool) error {
	if segmentCount < 0 || segmentSize < 0 || capacity < 0 {
		return api.NewError(api.ErrCodeInvalidConfiguration, "negative ring configuration")
	}
	if segmentSize == 0 || capacity == 0 {
		r.items = nil
		r.capacity = 0
		r.segmentSize = 0
		r.fixedAlloc = fixedAllocation
		return nil
	}
	if segmentCount == 0 {
		segmentCount = (capacity + segmentSize - 1) / segmentSize
	}
	if capacity > segmentCount*segmentSize {
		return api.NewError(api.ErrCodeInvalidConfiguration, "capacity exceeds segment storage").
			WithContext("segment_count", segmentCount).
			WithContext("segment_size", segmentSize).
			WithContext("capacity", capacity)
	}
	r.items = nil
	r.capacity = capacity
	r.segmentSize = segmentSize
	r.fixedAlloc = fixedAllocation
	return nil
}

func (r *Ring[T]) Discard() {
	r.items = nil
	r.capacity = 0
	r.segmentSize = 0
	r.fixedAlloc = false
}
