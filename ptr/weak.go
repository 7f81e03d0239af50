// File: ptr/weak.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ptr

// Weak observes a Shared payload without owning it. It keeps the control
// block alive, never the payload.
type Weak[T any] struct {
	_   noCopy
	ptr *T
	cb  controlBlock
}

// UseCount returns the number of owners of the observed payload.
func (w *Weak[T]) UseCount() int {
	if w.cb == nil {
		return 0
	}
	return w.cb.counts().owners
}

// Expired reports whether the observed payload has been released.
func (w *Weak[T]) Expired() bool { return w.UseCount() == 0 }

// Lock returns a new owner of the payload, or an empty handle if it has
// already been released.
func (w *Weak[T]) Lock() *Shared[T] {
	if w.Expired() {
		return &Shared[T]{}
	}
	w.cb.counts().owners++
	return &Shared[T]{ptr: w.ptr, cb: w.cb}
}

// Clone returns another observer of the same payload.
func (w *Weak[T]) Clone() *Weak[T] {
	if w.cb == nil {
		return &Weak[T]{}
	}
	w.cb.counts().observers++
	return &Weak[T]{ptr: w.ptr, cb: w.cb}
}

// Close drops this observer and releases the control block if nothing
// references it any more. Close is idempotent.
func (w *Weak[T]) Close() {
	if w.cb != nil {
		dropObserver(w.cb)
	}
	w.ptr, w.cb = nil, nil
}
