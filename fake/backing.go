// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake backing allocators for testing pool construction and teardown.

package fake

import "errors"

// ErrBackingDenied is returned by FailingBacking.
var ErrBackingDenied = errors.New("fake: backing allocation denied")

// FailingBacking refuses every allocation.
type FailingBacking struct{}

func (FailingBacking) Alloc(int) ([]byte, error) { return nil, ErrBackingDenied }
func (FailingBacking) Free([]byte) error         { return nil }
func (FailingBacking) Name() string              { return "failing" }

// CountingBacking allocates from the heap and records every call.
type CountingBacking struct {
	Allocs    int
	Frees     int
	LastSize  int
	ShortBy   int   // when > 0, Alloc returns a buffer this many bytes short
	FreeError error // returned from Free when set
}

// Alloc returns a zeroed buffer of size bytes.
func (c *CountingBacking) Alloc(size int) ([]byte, error) {
	c.Allocs++
	c.LastSize = size
	if c.ShortBy > 0 {
		return make([]byte, size-c.ShortBy), nil
	}
	return make([]byte, size), nil
}

// Free records the release.
func (c *CountingBacking) Free([]byte) error {
	c.Frees++
	return c.FreeError
}

func (c *CountingBacking) Name() string { return "counting" }
