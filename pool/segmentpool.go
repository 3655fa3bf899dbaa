// File: pool/segmentpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded FIFO recycler for segment backing arrays. Not safe for
// concurrent use; the owning ring is single-threaded.

package pool

import "github.com/eapache/queue"

// SegmentPool recycles fixed-size []T segment storage.
//
// Put zeroes the returned storage, so a segment obtained from Get is
// always default-initialized, whether freshly allocated or reused.
type SegmentPool[T any] struct {
	segmentSize int
	maxRetained int
	free        *queue.Queue

	allocs   uint64
	reuses   uint64
	discards uint64
}

// SegmentPoolStats aggregates allocation and reuse counters.
type SegmentPoolStats struct {
	Allocs   uint64 // segments allocated fresh
	Reuses   uint64 // segments served from the pool
	Discards uint64 // segments dropped on Put (limit reached or wrong size)
	Retained int    // segments currently parked
}

// NewSegmentPool creates a pool for segments of segmentSize items,
// retaining at most maxRetained freed segments.
func NewSegmentPool[T any](segmentSize, maxRetained int) *SegmentPool[T] {
	if segmentSize < 0 {
		segmentSize = 0
	}
	if maxRetained < 0 {
		maxRetained = 0
	}
	return &SegmentPool[T]{
		segmentSize: segmentSize,
		maxRetained: maxRetained,
		free:        queue.New(),
	}
}

// Get returns a default-initialized segment, reusing parked storage
// when available.
func (p *SegmentPool[T]) Get() []T {
	if p.free.Length() > 0 {
		p.reuses++
		return p.free.Remove().([]T)
	}
	p.allocs++
	return make([]T, p.segmentSize)
}

// Put parks a freed segment for reuse. Segments of the wrong size or
// beyond the retain limit are dropped for the GC.
func (p *SegmentPool[T]) Put(seg []T) {
	if len(seg) != p.segmentSize || p.segmentSize == 0 || p.free.Length() >= p.maxRetained {
		p.discards++
		return
	}
	clear(seg)
	p.free.Add(seg)
}

// Retained returns the number of segments currently parked.
func (p *SegmentPool[T]) Retained() int {
	return p.free.Length()
}

// Drain drops all parked segments.
func (p *SegmentPool[T]) Drain() {
	for p.free.Length() > 0 {
		p.free.Remove()
	}
}

// Stats exposes allocation and reuse counters.
func (p *SegmentPool[T]) Stats() SegmentPoolStats {
	return SegmentPoolStats{
		Allocs:   p.allocs,
		Reuses:   p.reuses,
		Discards: p.discards,
		Retained: p.free.Length(),
	}
}
