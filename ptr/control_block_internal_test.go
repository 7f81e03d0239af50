package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlBlockReleasedWithLastOwner(t *testing.T) {
	v := 1
	s := NewShared(&v)
	cb := s.cb.counts()
	c := s.Clone()

	s.Close()
	assert.False(t, cb.released)
	c.Close()
	assert.True(t, cb.released)
	assert.Equal(t, 0, cb.owners)
}

func TestControlBlockOutlivesPayloadWhileObserved(t *testing.T) {
	destroyed := 0
	v := 1
	s := NewSharedWithDeleter(&v, DeleterFunc[int](func(*int) { destroyed++ }))
	cb := s.cb.counts()
	w := s.Weak()
	assert.Equal(t, 1, cb.observers)

	s.Close()
	assert.Equal(t, 1, destroyed)
	assert.False(t, cb.released, "observer keeps the control block")

	w.Close()
	assert.True(t, cb.released)
	assert.Equal(t, 1, destroyed)
}

func TestControlBlockVariantsDropPayloadReference(t *testing.T) {
	v := 1
	def := newDefaultControlBlock(&v)
	def.destroyObject()
	assert.Nil(t, def.ptr)

	del := newDeleterControlBlock(&v, DefaultDelete[int]{})
	del.destroyObject()
	assert.Nil(t, del.ptr)
}
