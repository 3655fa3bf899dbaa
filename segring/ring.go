// File: segring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring container: construction, queries, push/pop/extend and access
// operations. Index arithmetic lives in index.go, segment allocation in
// segment.go, reconfiguration in reconfig.go.

package segring

import (
	"github.com/momentics/largering/api"
	"github.com/momentics/largering/pool"
)

// Ensure compile-time interface compliance.
var _ api.LargeRing[any] = (*Ring[any])(nil)

// defaultRetainedSegments bounds how many freed segment arrays the
// recycler parks before handing them to the GC.
const defaultRetainedSegments = 4

// Ring is a segmented large ring buffer. The zero value is a valid
// unconfigured ring with capacity 0; configure it with
// DiscardAndChangeConfiguration or ChangeConfiguration before pushing.
//
// A Ring is owned by a single goroutine.
type Ring[T any] struct {
	segments [][]T
	segSize  int
	physCap  int // len(segments) * segSize
	capacity int // logical capacity, <= physCap
	start    int
	end      int
	count    int

	fixedAlloc bool
	clear      api.ClearHandler[T]
	recycle    *pool.SegmentPool[T]
}

// Config is the full construction form.
type Config struct {
	SegmentCount int
	SegmentSize  int
	// Capacity is the logical capacity. 0 with a non-zero SegmentCount
	// and SegmentSize means SegmentCount*SegmentSize.
	Capacity               int
	FixedSegmentAllocation bool
	PreallocateSegments    bool
}

// Option configures a Ring at construction time.
type Option[T any] func(*Ring[T])

// WithClearHandler sets the strategy invoked on evicted and popped
// slots. The default does nothing.
func WithClearHandler[T any](h api.ClearHandler[T]) Option[T] {
	return func(r *Ring[T]) {
		if h != nil {
			r.clear = h
		}
	}
}

// New creates a ring with the given logical capacity; segment size is
// chosen by the capacity-tiered heuristic (see reconfig.go).
func New[T any](capacity int, opts ...Option[T]) *Ring[T] {
	r := newRing(opts...)
	r.ChangeConfiguration(capacity, false, false)
	return r
}

// NewWithSegments creates a ring of segmentCount segments holding
// segmentSize items each; the logical capacity is their product.
func NewWithSegments[T any](segmentCount, segmentSize int, opts ...Option[T]) *Ring[T] {
	r := newRing(opts...)
	// Capacity equals the physical slot count, so this cannot fail.
	_ = r.DiscardAndChangeConfiguration(segmentCount, segmentSize, segmentCount*segmentSize, false, false)
	return r
}

// NewWithConfig creates a ring from the full configuration form.
func NewWithConfig[T any](cfg Config, opts ...Option[T]) (*Ring[T], error) {
	r := newRing(opts...)
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = cfg.SegmentCount * cfg.SegmentSize
	}
	if err := r.DiscardAndChangeConfiguration(cfg.SegmentCount, cfg.SegmentSize, capacity,
		cfg.FixedSegmentAllocation, cfg.PreallocateSegments); err != nil {
		return nil, err
	}
	return r, nil
}

func newRing[T any](opts ...Option[T]) *Ring[T] {
	r := &Ring[T]{clear: NoopClearHandler[T]{}}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Len returns the number of items currently stored.
func (r *Ring[T]) Len() int { return r.count }

// Empty reports whether no items are stored.
func (r *Ring[T]) Empty() bool { return r.count == 0 }

// Full reports whether Len has reached MaxSize.
func (r *Ring[T]) Full() bool { return r.capacity > 0 && r.count == r.capacity }

// MaxSize returns the logical capacity.
func (r *Ring[T]) MaxSize() int { return r.capacity }

// SegmentSize returns the number of item slots per segment.
func (r *Ring[T]) SegmentSize() int { return r.segSize }

// SegmentCount returns the number of configured segments.
func (r *Ring[T]) SegmentCount() int { return len(r.segments) }

// FixedSegmentAllocation reports whether segment reclamation is
// disabled.
func (r *Ring[T]) FixedSegmentAllocation() bool { return r.fixedAlloc }

// ExtendBack makes room for one item at the back and returns its slot
// for in-place assignment. When full, the front item is evicted through
// the clear strategy first. Panics on an unconfigured ring.
func (r *Ring[T]) ExtendBack() *T {
	if r.physCap == 0 {
		panic("segring: ExtendBack on zero-capacity ring")
	}
	if r.count == r.capacity {
		r.clear.Clear(r.item(r.start))
		r.start = r.next(r.start)
		r.count--
	}
	item := r.materialize(r.end)
	r.end = r.next(r.end)
	r.count++
	return item
}

// ExtendFront is the front-side counterpart of ExtendBack, evicting the
// back item when full.
func (r *Ring[T]) ExtendFront() *T {
	if r.physCap == 0 {
		panic("segring: ExtendFront on zero-capacity ring")
	}
	if r.count == r.capacity {
		r.clear.Clear(r.item(r.beforeEnd()))
		r.end = r.prev(r.end)
		r.count--
	}
	r.start = r.prev(r.start)
	item := r.materialize(r.start)
	r.count++
	return item
}

// PushBack appends an item, evicting the front item when full.
func (r *Ring[T]) PushBack(item T) {
	*r.ExtendBack() = item
}

// PushFront prepends an item, evicting the back item when full.
func (r *Ring[T]) PushFront(item T) {
	*r.ExtendFront() = item
}

// PopBack removes the back item through the clear strategy. Panics on
// an empty ring.
func (r *Ring[T]) PopBack() {
	if r.count == 0 {
		panic("segring: PopBack on empty ring")
	}
	r.end = r.prev(r.end)
	r.clear.Clear(r.item(r.end))
	r.count--
	if r.end%r.segSize == 0 { // boundary crossed onto a segment border
		r.reclaimBack()
	}
}

// PopFront removes the front item through the clear strategy. Panics on
// an empty ring.
func (r *Ring[T]) PopFront() {
	if r.count == 0 {
		panic("segring: PopFront on empty ring")
	}
	r.clear.Clear(r.item(r.start))
	r.start = r.next(r.start)
	r.count--
	if r.start%r.segSize == 0 {
		r.reclaimFront()
	}
}

// Clear evicts every item through the clear strategy and, unless fixed
// allocation is configured, releases all segment storage.
func (r *Ring[T]) Clear() {
	for r.count > 0 {
		r.PopFront()
	}
	if !r.fixedAlloc {
		for i := range r.segments {
			r.release(i)
		}
	}
}

// At returns the item at logical index i, or ErrOutOfRange when i is
// outside [0, Len()).
func (r *Ring[T]) At(i int) (*T, error) {
	if i < 0 || i >= r.count {
		return nil, api.NewError(api.ErrCodeOutOfRange, "ring index out of bounds").
			WithContext("index", i).
			WithContext("size", r.count)
	}
	return r.item(r.slotOf(i)), nil
}

// Get is the unchecked counterpart of At; indexing outside [0, Len())
// is a caller bug and panics like slice indexing.
func (r *Ring[T]) Get(i int) *T {
	return r.item(r.slotOf(i))
}

// Front returns the first item. Panics on an empty ring.
func (r *Ring[T]) Front() *T {
	if r.count == 0 {
		panic("segring: Front on empty ring")
	}
	return r.item(r.start)
}

// Back returns the last item. Panics on an empty ring.
func (r *Ring[T]) Back() *T {
	if r.count == 0 {
		panic("segring: Back on empty ring")
	}
	return r.item(r.beforeEnd())
}
