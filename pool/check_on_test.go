//go:build poolcheck

package pool_test

import (
	"testing"
	"unsafe"

	"github.com/momentics/hioload-mempool/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksEnabled(t *testing.T) {
	assert.True(t, pool.ChecksEnabled)
}

func TestCheckDoubleFree(t *testing.T) {
	p, err := pool.New(16, 2)
	require.NoError(t, err)
	defer p.Close()

	b, ok := p.Allocate()
	require.True(t, ok)
	p.Deallocate(b)

	assert.Panics(t, func() { p.Deallocate(b) })
	assert.Equal(t, 2, p.Free(), "rejected free leaves the list untouched")
	require.NoError(t, p.Validate())
}

func TestCheckForeignBlock(t *testing.T) {
	p, err := pool.New(16, 2)
	require.NoError(t, err)
	defer p.Close()

	assert.Panics(t, func() { p.Deallocate(pool.Block(2)) })
	assert.Panics(t, func() { p.Deallocate(pool.Block(-2)) })
	assert.Equal(t, 0, p.InUse())
}

func TestCheckNeverAllocatedBlock(t *testing.T) {
	p, err := pool.New(16, 2)
	require.NoError(t, err)
	defer p.Close()

	assert.Panics(t, func() { p.Deallocate(pool.Block(1)) })
}

func TestCheckCloseWithOutstandingBlocks(t *testing.T) {
	p, err := pool.New(16, 2)
	require.NoError(t, err)

	b, ok := p.Allocate()
	require.True(t, ok)
	assert.Panics(t, func() { _ = p.Close() })
	assert.False(t, p.Closed())

	p.Deallocate(b)
	require.NoError(t, p.Close())
}

func TestCheckDeallocateAfterClose(t *testing.T) {
	p, err := pool.New(16, 1)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	assert.Panics(t, func() { p.Deallocate(pool.Block(0)) })
}

func TestCheckArenaForeignPointer(t *testing.T) {
	p, err := pool.New(int(unsafe.Sizeof(point{})), 2)
	require.NoError(t, err)
	defer p.Close()
	a, err := pool.NewArena[point](p)
	require.NoError(t, err)

	var outside point
	assert.Panics(t, func() { a.Free(&outside) })
	assert.Panics(t, func() { a.BlockOf(&outside) })

	other, err := pool.NewArena[point](p)
	require.NoError(t, err)
	v, _ := other.Alloc()
	require.NotNil(t, v)
	assert.Panics(t, func() { a.Free(v) }, "slot of a sibling arena")

	other.Free(v)
	assert.Equal(t, 0, p.InUse())
}
