// File: pool/backing.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral backing buffer allocators. The mmap-style allocator is
// selected through platform-specific factories in separate files.

package pool

import "fmt"

// BackingAllocator provides the single contiguous buffer a Pool slices into blocks.
type BackingAllocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte) error
	Name() string
}

// heapBacking allocates from the Go heap.
type heapBacking struct{}

// HeapBacking returns the default allocator backed by the Go heap.
func HeapBacking() BackingAllocator { return heapBacking{} }

func (heapBacking) Alloc(size int) (buf []byte, err error) {
	// make panics (recoverably) on lengths it cannot represent.
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("heap alloc %d bytes: %v", size, r)
		}
	}()
	return make([]byte, size), nil
}

func (heapBacking) Free([]byte) error { return nil }

func (heapBacking) Name() string { return "heap" }

// MmapBacking returns an allocator that maps anonymous private memory
// directly from the operating system, bypassing the Go heap. On platforms
// without such support it falls back to HeapBacking.
//
// The mapping holds only the byte blocks reached through Pool.Bytes and
// Pool.Addr. Arena payloads live in GC-managed slots and never touch it.
func MmapBacking() BackingAllocator {
	return newMmapBacking()
}
