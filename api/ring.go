// Package api
// Author: momentics <momentics@gmail.com>
//
// Segmented large ring buffer contract.
//
// A LargeRing stores a bounded stream of items with index-based access.
// Item addresses are stable: a *T obtained from the ring stays valid and
// keeps pointing at the same item until that item is evicted or popped,
// or until a reconfiguration relocates storage. Implementations are
// single-owner and not safe for concurrent use.

package api

// LargeRing is a fixed-capacity double-ended ring buffer over lazily
// allocated storage segments.
//
// Pushing beyond the logical capacity evicts one item from the opposite
// end per push (overwrite-oldest). Evicted and popped slots are passed
// through the configured ClearHandler before reuse.
type LargeRing[T any] interface {
	// Len returns the number of items currently stored.
	Len() int
	// Empty reports whether no items are stored.
	Empty() bool
	// Full reports whether Len has reached MaxSize.
	Full() bool
	// MaxSize returns the logical capacity: the maximum number of items
	// held before inserts start evicting.
	MaxSize() int
	// SegmentSize returns the number of item slots per segment.
	SegmentSize() int
	// SegmentCount returns the number of configured segments.
	SegmentCount() int
	// UsedSegments returns the number of segments with materialized
	// backing storage.
	UsedSegments() int
	// FixedSegmentAllocation reports whether segment reclamation is
	// disabled.
	FixedSegmentAllocation() bool

	// PushBack appends an item, evicting the front item when full.
	PushBack(item T)
	// PushFront prepends an item, evicting the back item when full.
	PushFront(item T)
	// ExtendBack makes room for one item at the back and returns the
	// slot for in-place assignment, avoiding a copy.
	ExtendBack() *T
	// ExtendFront is the front-side counterpart of ExtendBack.
	ExtendFront() *T
	// PopBack removes the back item. Panics on an empty ring.
	PopBack()
	// PopFront removes the front item. Panics on an empty ring.
	PopFront()
	// Clear evicts every item through the clear strategy and releases
	// segment storage unless fixed allocation is configured.
	Clear()

	// At returns the item at logical index i, or ErrOutOfRange.
	At(i int) (*T, error)
	// Get is the unchecked counterpart of At. Indexing outside
	// [0, Len()) is a caller bug; it panics like slice indexing.
	Get(i int) *T
	// Front returns the first item. Panics on an empty ring.
	Front() *T
	// Back returns the last item. Panics on an empty ring.
	Back() *T

	// ChangeConfiguration resizes the logical capacity in place,
	// evicting surplus items from the back and migrating retained
	// items by moving whole storage segments. Only a tail that wraps
	// through its own start segment is copied, relocating those items.
	ChangeConfiguration(capacity int, fixedAllocation, preallocate bool)
	// DiscardAndChangeConfiguration drops all items and storage without
	// invoking the clear strategy and applies a fresh configuration.
	// A segmentCount of 0 is computed from capacity and segmentSize; a
	// segmentSize or capacity of 0 yields a zero-capacity ring. Returns
	// ErrInvalidConfiguration when capacity exceeds
	// segmentCount*segmentSize or any argument is negative.
	DiscardAndChangeConfiguration(segmentCount, segmentSize, capacity int, fixedAllocation, preallocate bool) error
	// Discard resets the ring to the unconfigured zero-capacity state.
	Discard()
}

// ClearHandler is the pluggable policy invoked on a slot's value when
// the slot is evicted or popped, before the slot is reused.
type ClearHandler[T any] interface {
	// Clear releases or resets the resources held by item.
	Clear(item *T)
}

// Clearable is implemented by values that know how to reset themselves.
type Clearable interface {
	Clear()
}
