package ptr_test

import (
	"testing"

	"github.com/momentics/hioload-mempool/fake"
	"github.com/momentics/hioload-mempool/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueCloseReleasesOnce(t *testing.T) {
	rec := &fake.Recorder{}
	u := ptr.NewUnique(fake.NewObject(1, "one", rec))
	require.True(t, u.Valid())
	assert.Equal(t, 1, u.Get().ID)
	assert.Equal(t, "one", u.Value().Name)

	u.Close()
	u.Close()
	assert.False(t, u.Valid())
	assert.Equal(t, []string{"one"}, rec.Destroyed)
}

func TestUniqueEmpty(t *testing.T) {
	u := ptr.NewUnique[fake.Object](nil)
	assert.False(t, u.Valid())
	assert.Nil(t, u.Get())
	u.Close()

	var zero ptr.Unique[fake.Object, ptr.DefaultDelete[fake.Object]]
	assert.False(t, zero.Valid())
	zero.Close()
}

func TestUniqueMove(t *testing.T) {
	rec := &fake.Recorder{}
	a := ptr.NewUnique(fake.NewObject(10, "movable", rec))
	addr := a.Get()

	b := a.Move()
	assert.False(t, a.Valid())
	assert.Nil(t, a.Get())
	assert.Same(t, addr, b.Get())
	assert.Empty(t, rec.Destroyed, "move must not release")

	a.Close()
	assert.Empty(t, rec.Destroyed)
	b.Close()
	assert.Equal(t, []string{"movable"}, rec.Destroyed)
}

func TestUniqueMoveFromReleasesDestination(t *testing.T) {
	rec := &fake.Recorder{}
	src := ptr.NewUnique(fake.NewObject(10, "movable", rec))
	dst := ptr.NewUnique(fake.NewObject(20, "another", rec))
	want := src.Get()

	dst.MoveFrom(src)
	assert.Equal(t, []string{"another"}, rec.Destroyed)
	assert.False(t, src.Valid())
	assert.Same(t, want, dst.Get())

	dst.MoveFrom(dst)
	assert.Same(t, want, dst.Get())

	dst.Close()
	src.Close()
	assert.Equal(t, []string{"another", "movable"}, rec.Destroyed)
}

func TestUniqueMoveFromCarriesDeleter(t *testing.T) {
	var srcHits, dstHits int
	src := ptr.NewUniqueWithDeleter(fake.NewObject(1, "src", nil),
		ptr.DeleterFunc[fake.Object](func(*fake.Object) { srcHits++ }))
	dst := ptr.NewUniqueWithDeleter(fake.NewObject(2, "dst", nil),
		ptr.DeleterFunc[fake.Object](func(*fake.Object) { dstHits++ }))

	dst.MoveFrom(src)
	assert.Equal(t, 1, dstHits)
	dst.Close()
	assert.Equal(t, 1, srcHits, "moved payload must release through its own action")
	assert.Equal(t, 1, dstHits)
}

func TestUniqueRelease(t *testing.T) {
	rec := &fake.Recorder{}
	u := ptr.NewUnique(fake.NewObject(30, "release", rec))
	raw := u.Release()
	require.NotNil(t, raw)
	assert.False(t, u.Valid())

	u.Close()
	assert.Empty(t, rec.Destroyed)

	raw.Destroy()
	assert.Equal(t, []string{"release"}, rec.Destroyed)
}

func TestUniqueReset(t *testing.T) {
	rec := &fake.Recorder{}
	u := ptr.NewUnique(fake.NewObject(40, "original", rec))
	u.Reset(fake.NewObject(50, "replacement", rec))
	assert.Equal(t, []string{"original"}, rec.Destroyed)
	assert.Equal(t, "replacement", u.Get().Name)

	u.Reset(nil)
	assert.False(t, u.Valid())
	assert.Equal(t, []string{"original", "replacement"}, rec.Destroyed)
}

func TestUniqueSwap(t *testing.T) {
	var hitsA, hitsB []string
	a := ptr.NewUniqueWithDeleter(fake.NewObject(60, "A", nil),
		ptr.DeleterFunc[fake.Object](func(o *fake.Object) { hitsA = append(hitsA, o.Name) }))
	b := ptr.NewUniqueWithDeleter(fake.NewObject(70, "B", nil),
		ptr.DeleterFunc[fake.Object](func(o *fake.Object) { hitsB = append(hitsB, o.Name) }))

	a.Swap(b)
	assert.Equal(t, "B", a.Get().Name)
	assert.Equal(t, "A", b.Get().Name)

	a.Close()
	b.Close()
	assert.Equal(t, []string{"B"}, hitsB, "release action travels with its payload")
	assert.Equal(t, []string{"A"}, hitsA)
}

func TestUniqueCustomDeleterInvokedOnce(t *testing.T) {
	calls := 0
	d := ptr.DeleterFunc[int](func(*int) { calls++ })
	v := 42
	u := ptr.NewUniqueWithDeleter(&v, d)
	assert.Equal(t, 42, u.Value())

	u.Reset(nil)
	u.Close()
	assert.Equal(t, 1, calls)
	assert.NotNil(t, u.Deleter())
}

func TestUniquePayloadWithoutDestroyer(t *testing.T) {
	v := "plain"
	u := ptr.NewUnique(&v)
	assert.Equal(t, "plain", u.Value())
	u.Close()
	assert.False(t, u.Valid())
}
