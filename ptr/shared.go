// File: ptr/shared.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ptr

// Shared is a reference-counted owner. Every Shared handle pointing at a
// payload holds one owner reference on a common control block; the payload
// is released when the last owner goes away.
//
// The zero value is an empty handle. Handles must not be copied by value;
// use Clone for a new owner and Move/MoveFrom to transfer.
type Shared[T any] struct {
	_   noCopy
	ptr *T
	cb  controlBlock
}

// NewShared owns p with the default release action. A nil p yields an
// empty handle without a control block.
func NewShared[T any](p *T) *Shared[T] {
	s := &Shared[T]{ptr: p}
	if p != nil {
		s.cb = newDefaultControlBlock(p)
	}
	return s
}

// NewSharedWithDeleter owns p, releasing it through d once the last owner
// is gone.
func NewSharedWithDeleter[T any, D Deleter[T]](p *T, d D) *Shared[T] {
	s := &Shared[T]{ptr: p}
	if p != nil {
		s.cb = newDeleterControlBlock(p, d)
	}
	return s
}

// Get returns the payload without affecting ownership.
func (s *Shared[T]) Get() *T { return s.ptr }

// Value dereferences the payload. Calling it on an empty handle panics.
func (s *Shared[T]) Value() T { return *s.ptr }

// Valid reports whether the handle holds a payload.
func (s *Shared[T]) Valid() bool { return s.ptr != nil }

// UseCount returns the number of owners, or 0 without a control block.
func (s *Shared[T]) UseCount() int {
	if s.cb == nil {
		return 0
	}
	return s.cb.counts().owners
}

// Clone returns a new owner of the same payload.
func (s *Shared[T]) Clone() *Shared[T] {
	s.acquire()
	return &Shared[T]{ptr: s.ptr, cb: s.cb}
}

// Assign makes s another owner of o's payload, first dropping whatever s
// owned. Assigning a handle to itself is a no-op.
func (s *Shared[T]) Assign(o *Shared[T]) {
	if s == o {
		return
	}
	s.drop()
	s.ptr, s.cb = o.ptr, o.cb
	s.acquire()
}

// Move transfers the payload into a new handle and leaves s empty. Owner
// counts are unchanged.
func (s *Shared[T]) Move() *Shared[T] {
	dst := &Shared[T]{ptr: s.ptr, cb: s.cb}
	s.ptr, s.cb = nil, nil
	return dst
}

// MoveFrom drops whatever s owned, then takes o's payload and control block
// and leaves o empty.
func (s *Shared[T]) MoveFrom(o *Shared[T]) {
	if s == o {
		return
	}
	s.drop()
	s.ptr, s.cb = o.ptr, o.cb
	o.ptr, o.cb = nil, nil
}

// Reset drops the current payload and, if p is non-nil, owns p through a
// fresh control block with the default release action. A custom release
// action can only be attached at construction.
func (s *Shared[T]) Reset(p *T) {
	s.drop()
	s.ptr, s.cb = p, nil
	if p != nil {
		s.cb = newDefaultControlBlock(p)
	}
}

// Swap exchanges payloads and control blocks with o.
func (s *Shared[T]) Swap(o *Shared[T]) {
	s.ptr, o.ptr = o.ptr, s.ptr
	s.cb, o.cb = o.cb, s.cb
}

// Weak returns a non-owning observer of the payload.
func (s *Shared[T]) Weak() *Weak[T] {
	if s.cb == nil {
		return &Weak[T]{}
	}
	s.cb.counts().observers++
	return &Weak[T]{ptr: s.ptr, cb: s.cb}
}

// Close drops this owner. The payload is released if it was the last one.
// Close leaves the handle empty and is idempotent.
func (s *Shared[T]) Close() {
	s.drop()
	s.ptr, s.cb = nil, nil
}

func (s *Shared[T]) acquire() {
	if s.cb != nil {
		checkLive(s.cb.counts())
		s.cb.counts().owners++
	}
}

// drop decrements the owner count and, when it reaches zero, releases the
// payload and empties s.
func (s *Shared[T]) drop() {
	if s.cb == nil {
		return
	}
	if dropOwner(s.cb) {
		s.ptr, s.cb = nil, nil
	}
}
