// File: ptr/control_block.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ptr

// refCount is the bookkeeping shared by every control block variant.
type refCount struct {
	owners    int
	observers int
	released  bool
}

func (r *refCount) counts() *refCount { return r }

// controlBlock is allocated once per owned payload and shared by all of its
// Shared and Weak handles. The release action is erased behind
// destroyObject so handles built with different actions stay interchangeable.
type controlBlock interface {
	counts() *refCount
	destroyObject()
}

// defaultControlBlock releases through DefaultDelete.
type defaultControlBlock[T any] struct {
	refCount
	ptr *T
}

func newDefaultControlBlock[T any](p *T) *defaultControlBlock[T] {
	return &defaultControlBlock[T]{refCount: refCount{owners: 1}, ptr: p}
}

func (cb *defaultControlBlock[T]) destroyObject() {
	p := cb.ptr
	cb.ptr = nil
	Destroy(p)
}

// deleterControlBlock releases through a caller-supplied action.
type deleterControlBlock[T any, D Deleter[T]] struct {
	refCount
	ptr *T
	del D
}

func newDeleterControlBlock[T any, D Deleter[T]](p *T, d D) *deleterControlBlock[T, D] {
	return &deleterControlBlock[T, D]{refCount: refCount{owners: 1}, ptr: p, del: d}
}

func (cb *deleterControlBlock[T, D]) destroyObject() {
	p := cb.ptr
	cb.ptr = nil
	cb.del.Delete(p)
}

// dropOwner runs the owner-side decrement. It reports whether the payload
// was destroyed.
func dropOwner(cb controlBlock) bool {
	rc := cb.counts()
	checkLive(rc)
	rc.owners--
	if rc.owners != 0 {
		return false
	}
	cb.destroyObject()
	if rc.observers == 0 {
		rc.released = true
	}
	return true
}

// dropObserver runs the observer-side decrement.
func dropObserver(cb controlBlock) {
	rc := cb.counts()
	checkLive(rc)
	rc.observers--
	if rc.observers == 0 && rc.owners == 0 {
		rc.released = true
	}
}
