// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-block memory pool for hioload-mempool.
// A Pool owns one contiguous backing buffer sliced into equal-size blocks and
// hands blocks out in O(1) through an index-linked LIFO free list. Backing
// memory comes from a BackingAllocator: the Go heap by default, or an
// anonymous mapping (mmap / VirtualAlloc) when MmapBacking is selected.
//
// Arena[T] layers typed slots over a Pool so Go values can be constructed
// "in" a block while remaining visible to the garbage collector.
//
// Nothing in this package is safe for concurrent use. Misuse (double free,
// foreign blocks, closing with blocks outstanding) is unchecked unless the
// module is built with -tags poolcheck.
package pool
