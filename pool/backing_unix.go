//go:build unix

// File: pool/backing_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix backing allocator using anonymous private mappings.

package pool

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// unixMmapBacking maps page-aligned anonymous memory outside the Go heap.
type unixMmapBacking struct{}

func newMmapBacking() BackingAllocator {
	return unixMmapBacking{}
}

func (unixMmapBacking) Alloc(size int) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return buf, nil
}

func (unixMmapBacking) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := unix.Munmap(buf); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}

func (unixMmapBacking) Name() string { return "mmap" }
