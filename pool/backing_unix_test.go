//go:build unix

package pool_test

import (
	"testing"

	"github.com/momentics/hioload-mempool/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMmapBacking(t *testing.T) {
	p, err := pool.New(128, 64, pool.WithBacking(pool.MmapBacking()))
	require.NoError(t, err)

	base := p.Addr(0)
	assert.Zero(t, base%uintptr(unix.Getpagesize()), "mapping must be page aligned")
	assert.Equal(t, "mmap", p.Stats().Backing)

	b, ok := p.Allocate()
	require.True(t, ok)
	buf := p.Bytes(b)
	for i := range buf {
		buf[i] = byte(i)
	}
	assert.Equal(t, byte(127), p.Bytes(b)[127])
	p.Deallocate(b)

	require.NoError(t, p.Close())
}
