// File: segring/segment.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Segment materialization and reclamation. A segment materializes on
// the first write into it and is released once the occupied range has
// moved off it, with two exceptions: one free segment always remains as
// slack, and the segment adjacent to the active boundary is retained so
// an index oscillating across a segment border does not free and
// re-materialize storage on every step.

package segring

// UsedSegments returns the number of segments with materialized backing
// storage.
func (r *Ring[T]) UsedSegments() int {
	used := 0
	for _, seg := range r.segments {
		if seg != nil {
			used++
		}
	}
	return used
}

// materialize returns the address of a slot, allocating its segment's
// backing storage when absent. Only write paths materialize.
func (r *Ring[T]) materialize(slot int) *T {
	seg, off := slot/r.segSize, slot%r.segSize
	s := r.segments[seg]
	if s == nil {
		s = r.recycle.Get()
		r.segments[seg] = s
	}
	return &s[off]
}

// release parks a segment's backing storage in the recycler.
func (r *Ring[T]) release(seg int) {
	if r.segments[seg] == nil {
		return
	}
	r.recycle.Put(r.segments[seg])
	r.segments[seg] = nil
}

// canReclaim requires more than one segment's worth of free slots, so
// at least one free segment always stays materialized as slack.
func (r *Ring[T]) canReclaim() bool {
	return !r.fixedAlloc && r.physCap-r.count > r.segSize
}

// reclaimFront frees drained segments behind the front boundary. Called
// after PopFront moves start onto a segment border.
func (r *Ring[T]) reclaimFront() {
	if !r.canReclaim() {
		return
	}
	n := len(r.segments)
	endSeg := r.end / r.segSize
	seg := r.start / r.segSize
	// The segment behind the boundary is retained as jitter slack.
	seg = prevSeg(seg, n)
	if seg == endSeg || r.segments[seg] == nil {
		return
	}
	seg = prevSeg(seg, n)
	for seg != endSeg && r.segments[seg] != nil {
		r.release(seg)
		seg = prevSeg(seg, n)
	}
}

// reclaimBack frees drained segments past the back boundary. Called
// after PopBack moves end onto a segment border.
func (r *Ring[T]) reclaimBack() {
	if !r.canReclaim() {
		return
	}
	n := len(r.segments)
	startSeg := r.start / r.segSize
	seg := r.end / r.segSize
	seg = nextSeg(seg, n)
	if seg == startSeg || r.segments[seg] == nil {
		return
	}
	seg = nextSeg(seg, n)
	for seg != startSeg && r.segments[seg] != nil {
		r.release(seg)
		seg = nextSeg(seg, n)
	}
}

// preallocateAll eagerly materializes every segment.
func (r *Ring[T]) preallocateAll() {
	for i, seg := range r.segments {
		if seg == nil {
			r.segments[i] = r.recycle.Get()
		}
	}
}

func prevSeg(seg, segCount int) int {
	if seg == 0 {
		return segCount - 1
	}
	return seg - 1
}

func nextSeg(seg, segCount int) int {
	seg++
	if seg == segCount {
		return 0
	}
	return seg
}
