//go:build !unix && !windows

// File: pool/backing_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub mapping allocator for unsupported platforms.

package pool

func newMmapBacking() BackingAllocator {
	return heapBacking{}
}
