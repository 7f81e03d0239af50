// File: ptr/unique.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ptr

// Unique is the single owner of a payload. Its zero value holds nothing
// and carries the zero release action.
//
// Handles must not be copied by value; use Move or MoveFrom to transfer
// ownership.
type Unique[T any, D Deleter[T]] struct {
	_   noCopy
	ptr *T
	del D
}

// NewUnique takes ownership of p with the default release action.
func NewUnique[T any](p *T) *Unique[T, DefaultDelete[T]] {
	return &Unique[T, DefaultDelete[T]]{ptr: p}
}

// NewUniqueWithDeleter takes ownership of p, releasing it through d.
func NewUniqueWithDeleter[T any, D Deleter[T]](p *T, d D) *Unique[T, D] {
	return &Unique[T, D]{ptr: p, del: d}
}

// Get returns the payload without giving up ownership.
func (u *Unique[T, D]) Get() *T { return u.ptr }

// Value dereferences the payload. Calling it on an empty handle panics.
func (u *Unique[T, D]) Value() T { return *u.ptr }

// Valid reports whether the handle holds a payload.
func (u *Unique[T, D]) Valid() bool { return u.ptr != nil }

// Deleter returns the release action.
func (u *Unique[T, D]) Deleter() D { return u.del }

// Release hands the payload to the caller without running the release
// action and leaves the handle empty.
func (u *Unique[T, D]) Release() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset releases the current payload, if any, then adopts p.
func (u *Unique[T, D]) Reset(p *T) {
	old := u.ptr
	u.ptr = p
	if old != nil {
		u.del.Delete(old)
	}
}

// Swap exchanges payloads and release actions with o.
func (u *Unique[T, D]) Swap(o *Unique[T, D]) {
	u.ptr, o.ptr = o.ptr, u.ptr
	u.del, o.del = o.del, u.del
}

// Move transfers the payload and release action into a new handle and
// leaves u empty. No release action runs.
func (u *Unique[T, D]) Move() *Unique[T, D] {
	dst := &Unique[T, D]{ptr: u.ptr, del: u.del}
	var zero D
	u.ptr, u.del = nil, zero
	return dst
}

// MoveFrom releases what u owns, then takes src's payload and release
// action, leaving src empty. Moving a handle into itself is a no-op.
func (u *Unique[T, D]) MoveFrom(src *Unique[T, D]) {
	if u == src {
		return
	}
	old, oldDel := u.ptr, u.del
	var zero D
	u.ptr, u.del = src.ptr, src.del
	src.ptr, src.del = nil, zero
	if old != nil {
		oldDel.Delete(old)
	}
}

// Close runs the release action on the held payload, if any. Closing an
// empty handle is a no-op, so Close may be deferred unconditionally.
func (u *Unique[T, D]) Close() {
	u.Reset(nil)
}
