// Package segring
// Author: momentics <momentics@gmail.com>
//
// Segmented large ring buffer: a fixed-capacity double-ended queue for
// very large item counts, optimized for index-based access to items
// that are updated continuously but must not move in memory.
//
// Storage is split into equally sized segments that materialize on
// first write and are reclaimed once drained, so a buffer that is only
// partially occupied only pays for the segments it touches. Item
// addresses are stable until the item is evicted, popped, or a
// reconfiguration relocates storage.
//
// A Ring is owned by a single goroutine; no internal locking is
// provided. See ring.go, segment.go, reconfig.go for implementation
// details.
package segring
