// File: segring/index.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Circular slot arithmetic. Slots are numbered [0, physCap); start is
// the first occupied slot, end is one past the last. count is tracked
// directly, which disambiguates start == end (empty vs. completely
// full physical space).

package segring

// slotOf maps logical index i to its physical slot.
func (r *Ring[T]) slotOf(i int) int {
	s := r.start + i
	if s >= r.physCap {
		s -= r.physCap
	}
	return s
}

func (r *Ring[T]) next(slot int) int {
	slot++
	if slot == r.physCap {
		return 0
	}
	return slot
}

func (r *Ring[T]) prev(slot int) int {
	if slot == 0 {
		return r.physCap - 1
	}
	return slot - 1
}

// beforeEnd is the slot of the current back item.
func (r *Ring[T]) beforeEnd() int {
	return r.prev(r.end)
}

// item returns the address of an occupied slot. The segment is known to
// be materialized because the slot is inside [start, end).
func (r *Ring[T]) item(slot int) *T {
	return &r.segments[slot/r.segSize][slot%r.segSize]
}

// occupiedSegmentSpan is the number of segments the occupied range
// touches, counted from the segment holding start.
func (r *Ring[T]) occupiedSegmentSpan() int {
	if r.count == 0 || r.segSize == 0 {
		return 0
	}
	off := r.start % r.segSize
	return (off + r.count + r.segSize - 1) / r.segSize
}
