//go:build windows

// File: pool/backing_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsVirtualBacking commits private pages with VirtualAlloc.
type windowsVirtualBacking struct{}

func newMmapBacking() BackingAllocator {
	return windowsVirtualBacking{}
}

func (windowsVirtualBacking) Alloc(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("VirtualAlloc %d bytes: %w", size, err)
	}
	if addr == 0 {
		return nil, fmt.Errorf("VirtualAlloc %d bytes: null address", size)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func (windowsVirtualBacking) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := windows.VirtualFree(uintptr(unsafe.Pointer(&buf[0])), 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("VirtualFree: %w", err)
	}
	return nil
}

func (windowsVirtualBacking) Name() string { return "virtualalloc" }
