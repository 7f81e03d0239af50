// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-mempool/api"
)

// Arena holds one typed slot per pool block. The slot for block b is the
// storage a T "constructed in" b lives in, so block accounting stays with
// the Pool while the payload stays visible to the garbage collector.
//
// Several arenas of different types may share one Pool; a block index is
// only ever live in the arena that allocated it.
type Arena[T any] struct {
	pool  *Pool
	slots []T
	size  uintptr
}

// NewArena binds typed storage to p. T must fit in one block and must not
// be zero-sized.
func NewArena[T any](p *Pool) (*Arena[T], error) {
	if p == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "arena requires a pool")
	}
	if p.closed {
		return nil, api.NewError(api.ErrCodePoolClosed, "arena on closed pool").
			WithContext("pool_id", p.id.String())
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "zero-sized payload type")
	}
	if size > uintptr(p.blockSize) {
		return nil, api.NewError(api.ErrCodeBlockTooSmall, "payload larger than pool block").
			WithContext("payload_size", int(size)).
			WithContext("block_size", p.blockSize)
	}
	return &Arena[T]{
		pool:  p,
		slots: make([]T, p.blockCount),
		size:  size,
	}, nil
}

// Pool returns the pool the arena draws blocks from.
func (a *Arena[T]) Pool() *Pool { return a.pool }

// Alloc takes a block from the pool and returns its zeroed slot, or
// (nil, NoBlock) when the pool is exhausted.
func (a *Arena[T]) Alloc() (*T, Block) {
	b, ok := a.pool.Allocate()
	if !ok {
		return nil, NoBlock
	}
	return &a.slots[b], b
}

// Free zeroes the slot v points at and returns its block to the pool.
// Destruction of the payload is the caller's business.
func (a *Arena[T]) Free(v *T) {
	b := a.BlockOf(v)
	if b == NoBlock {
		return
	}
	var zero T
	*v = zero
	a.pool.Deallocate(b)
}

// BlockOf maps a slot pointer back to its block, or NoBlock if v is nil or
// not a slot of this arena.
func (a *Arena[T]) BlockOf(v *T) Block {
	if v == nil || len(a.slots) == 0 {
		return NoBlock
	}
	off := uintptr(unsafe.Pointer(v)) - uintptr(unsafe.Pointer(&a.slots[0]))
	idx := off / a.size
	if off%a.size != 0 || idx >= uintptr(len(a.slots)) {
		if ChecksEnabled {
			panic("poolcheck: pointer is not a slot of this arena")
		}
		return NoBlock
	}
	return Block(idx)
}

// At returns the slot of block b.
func (a *Arena[T]) At(b Block) *T {
	return &a.slots[b]
}
