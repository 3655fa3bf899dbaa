// Package pool
// Author: momentics <momentics@gmail.com>
//
// Segment storage recycling for the largering library. Freed segment
// backing arrays are parked in a bounded FIFO and handed back out on the
// next materialization, so an index oscillating across segment borders
// does not round-trip through the allocator.
package pool
