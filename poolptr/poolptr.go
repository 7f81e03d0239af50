// Package poolptr
// Author: momentics <momentics@gmail.com>
//
// Pool-aware release action and factories that construct payloads inside
// pool blocks and hand them out behind ptr.Unique or ptr.Shared handles.
// These are the only functions coupling package pool to package ptr.

package poolptr

import (
	"github.com/momentics/hioload-mempool/pool"
	"github.com/momentics/hioload-mempool/ptr"
)

// PoolDeleter destroys a payload in place and returns its block to the
// arena's pool. The zero value is bound to no arena and does nothing.
// The pool must outlive every PoolDeleter derived from it.
type PoolDeleter[T any] struct {
	arena *pool.Arena[T]
}

// NewPoolDeleter binds a release action to a.
func NewPoolDeleter[T any](a *pool.Arena[T]) PoolDeleter[T] {
	return PoolDeleter[T]{arena: a}
}

// Arena returns the bound arena, or nil.
func (d PoolDeleter[T]) Arena() *pool.Arena[T] { return d.arena }

// Delete runs p's destructor, then returns its block to the pool.
func (d PoolDeleter[T]) Delete(p *T) {
	if p == nil || d.arena == nil {
		return
	}
	ptr.Destroy(p)
	d.arena.Free(p)
}

// construct takes a block and runs init on its slot. If init panics the
// block goes back to the pool before the panic propagates.
func construct[T any](a *pool.Arena[T], init func(*T)) *T {
	obj, _ := a.Alloc()
	if obj == nil || init == nil {
		return obj
	}
	done := false
	defer func() {
		if !done {
			a.Free(obj)
		}
	}()
	init(obj)
	done = true
	return obj
}

// MakeUnique constructs a T in a block of a's pool and returns its sole
// owner. When the pool is exhausted the handle is empty but still carries
// a PoolDeleter bound to a.
func MakeUnique[T any](a *pool.Arena[T], init func(*T)) *ptr.Unique[T, PoolDeleter[T]] {
	return ptr.NewUniqueWithDeleter(construct(a, init), NewPoolDeleter(a))
}

// MakeShared constructs a T in a block of a's pool and returns its first
// owner. When the pool is exhausted the handle is empty and has no control
// block.
func MakeShared[T any](a *pool.Arena[T], init func(*T)) *ptr.Shared[T] {
	obj := construct(a, init)
	if obj == nil {
		return ptr.NewShared[T](nil)
	}
	return ptr.NewSharedWithDeleter(obj, NewPoolDeleter(a))
}
