// File: pool/pool.go
// Package pool implements fixed-block allocation with an index-linked free list.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/google/uuid"
	"github.com/momentics/hioload-mempool/api"
)

// Block identifies one block of a Pool by index.
type Block int

// NoBlock is the "none" block: returned on exhaustion, ignored by Deallocate.
const NoBlock Block = -1

// Pool is a fixed-capacity block allocator.
//
// Every free block stores the index of the next free block in next[b],
// so the free list needs no per-block allocation and Allocate/Deallocate
// are O(1). Blocks come back out in LIFO order.
type Pool struct {
	id         uuid.UUID
	blockSize  int
	blockCount int

	buf     []byte
	backing BackingAllocator

	next []Block
	head Block
	free int

	quarantine *quarantine
	poison     int
	log        *slog.Logger
	owned      []bool // debug builds only

	inUse      int
	totalAlloc uint64
	totalFree  uint64
	exhausted  uint64
	closed     bool
}

// New allocates a backing buffer of blockSize*blockCount bytes and threads
// every block onto the free list.
func New(blockSize, blockCount int, opts ...Option) (*Pool, error) {
	cfg := DefaultConfig()
	cfg.BlockSize = blockSize
	cfg.BlockCount = blockCount
	for _, opt := range opts {
		opt(cfg)
	}
	return NewFromConfig(cfg)
}

// NewFromConfig builds a Pool from an explicit configuration.
func NewFromConfig(cfg *Config) (*Pool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BlockSize <= 0 || cfg.BlockCount <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "block size and count must be positive").
			WithContext("block_size", cfg.BlockSize).
			WithContext("block_count", cfg.BlockCount)
	}
	if cfg.BlockSize > math.MaxInt/cfg.BlockCount {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pool size overflows int").
			WithContext("block_size", cfg.BlockSize).
			WithContext("block_count", cfg.BlockCount)
	}
	if cfg.Poison > math.MaxUint8 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "poison must fit in a byte").
			WithContext("poison", cfg.Poison)
	}
	backing := cfg.Backing
	if backing == nil {
		backing = HeapBacking()
	}

	size := cfg.BlockSize * cfg.BlockCount
	buf, err := backing.Alloc(size)
	if err != nil {
		return nil, api.NewError(api.ErrCodeBackingAlloc, "allocate pool backing buffer").
			WithContext("backing", backing.Name()).
			WithContext("bytes", size).
			WithCause(err)
	}
	if len(buf) < size {
		_ = backing.Free(buf)
		return nil, api.NewError(api.ErrCodeBackingAlloc, "backing buffer too short").
			WithContext("backing", backing.Name()).
			WithContext("bytes", size).
			WithContext("got", len(buf))
	}

	p := &Pool{
		id:         uuid.New(),
		blockSize:  cfg.BlockSize,
		blockCount: cfg.BlockCount,
		buf:        buf[:size:size],
		backing:    backing,
		next:       make([]Block, cfg.BlockCount),
		quarantine: newQuarantine(cfg.Quarantine),
		poison:     cfg.Poison,
		log:        cfg.Logger,
		owned:      newOwnership(cfg.BlockCount),
	}
	p.thread()

	if p.log != nil {
		p.log.Info("pool created",
			slog.String("pool_id", p.id.String()),
			slog.Int("block_size", p.blockSize),
			slog.Int("block_count", p.blockCount),
			slog.String("backing", backing.Name()))
	}
	return p, nil
}

// thread links all blocks so that block 0 is handed out first.
func (p *Pool) thread() {
	p.head = NoBlock
	for i := p.blockCount - 1; i >= 0; i-- {
		p.next[i] = p.head
		p.head = Block(i)
	}
	p.free = p.blockCount
}

// Allocate pops the head of the free list. It returns (NoBlock, false)
// when every block is in use; exhaustion is not an error.
func (p *Pool) Allocate() (Block, bool) {
	b := p.head
	if b != NoBlock {
		p.head = p.next[b]
		p.free--
	} else if b = p.quarantine.evict(); b == NoBlock {
		p.exhausted++
		if p.log != nil && p.log.Enabled(context.Background(), slog.LevelDebug) {
			p.log.Debug("pool exhausted",
				slog.String("pool_id", p.id.String()),
				slog.Int("block_count", p.blockCount))
		}
		return NoBlock, false
	}
	p.next[b] = NoBlock
	checkAllocate(p, b)
	p.inUse++
	p.totalAlloc++
	return b, true
}

// Deallocate pushes b back onto the head of the free list. NoBlock is a
// no-op. The caller guarantees b came from this pool and is not already
// free; only -tags poolcheck builds verify it.
func (p *Pool) Deallocate(b Block) {
	if b == NoBlock {
		return
	}
	checkDeallocate(p, b)
	p.inUse--
	p.totalFree++
	if p.poison >= 0 {
		fill(p.Bytes(b), byte(p.poison))
	}
	if p.quarantine != nil {
		if b = p.quarantine.park(b); b == NoBlock {
			return
		}
	}
	p.next[b] = p.head
	p.head = b
	p.free++
}

// Close releases the backing buffer. Objects living in outstanding blocks
// must have been released first. Close is idempotent.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	checkClose(p)
	p.closed = true
	buf := p.buf
	p.buf = nil
	p.head = NoBlock
	p.free = 0
	p.quarantine = nil
	if p.log != nil {
		p.log.Info("pool closed",
			slog.String("pool_id", p.id.String()),
			slog.Int("in_use", p.inUse),
			slog.Uint64("total_alloc", p.totalAlloc))
	}
	if err := p.backing.Free(buf); err != nil {
		return api.NewError(api.ErrCodeBackingAlloc, "release pool backing buffer").
			WithContext("pool_id", p.id.String()).
			WithCause(err)
	}
	return nil
}

// ID returns the pool's unique identifier.
func (p *Pool) ID() uuid.UUID { return p.id }

// BlockSize returns the size of every block in bytes.
func (p *Pool) BlockSize() int { return p.blockSize }

// BlockCount returns the fixed number of blocks.
func (p *Pool) BlockCount() int { return p.blockCount }

// Free returns the length of the free list.
func (p *Pool) Free() int { return p.free }

// InUse returns the number of outstanding blocks.
func (p *Pool) InUse() int { return p.inUse }

// Quarantined returns the number of freed blocks parked before reuse.
func (p *Pool) Quarantined() int { return p.quarantine.len() }

// Closed reports whether Close has run.
func (p *Pool) Closed() bool { return p.closed }

// Bytes returns the memory of block b. The slice is only valid while b is
// allocated and the pool is open.
func (p *Pool) Bytes(b Block) []byte {
	off := int(b) * p.blockSize
	return p.buf[off : off+p.blockSize : off+p.blockSize]
}

// Addr returns the address of block b inside the backing buffer.
func (p *Pool) Addr(b Block) uintptr {
	if b == NoBlock || p.buf == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(&p.buf[int(b)*p.blockSize]))
}

// BlockAt maps an address inside the backing buffer back to its block.
func (p *Pool) BlockAt(addr uintptr) Block {
	if p.buf == nil {
		return NoBlock
	}
	base := uintptr(unsafe.Pointer(&p.buf[0]))
	if addr < base || addr >= base+uintptr(len(p.buf)) {
		return NoBlock
	}
	off := addr - base
	if off%uintptr(p.blockSize) != 0 {
		return NoBlock
	}
	return Block(off / uintptr(p.blockSize))
}

// Stats reports allocation counters.
func (p *Pool) Stats() api.PoolStats {
	return api.PoolStats{
		ID:          p.id.String(),
		BlockSize:   p.blockSize,
		BlockCount:  p.blockCount,
		InUse:       p.inUse,
		Free:        p.free,
		Quarantined: p.quarantine.len(),
		TotalAlloc:  p.totalAlloc,
		TotalFree:   p.totalFree,
		Exhausted:   p.exhausted,
		Backing:     p.backing.Name(),
	}
}

// Validate walks the free list and checks that no block appears twice and
// that in-use, free and quarantined blocks add up to the block count.
func (p *Pool) Validate() error {
	if p.closed {
		return nil
	}
	seen := make([]bool, p.blockCount)
	var dup error
	mark := func(b Block, where string) {
		if dup != nil {
			return
		}
		if b < 0 || int(b) >= p.blockCount {
			dup = fmt.Errorf("%s holds out-of-range block %d", where, b)
			return
		}
		if seen[b] {
			dup = fmt.Errorf("block %d listed twice (%s)", b, where)
			return
		}
		seen[b] = true
	}

	n := 0
	for b := p.head; b != NoBlock; b = p.next[b] {
		if mark(b, "free list"); dup != nil {
			break
		}
		n++
	}
	p.quarantine.each(func(b Block) { mark(b, "quarantine") })

	if dup == nil && n != p.free {
		dup = fmt.Errorf("free list length %d, counter %d", n, p.free)
	}
	if total := p.inUse + p.free + p.quarantine.len(); dup == nil && total != p.blockCount {
		dup = fmt.Errorf("in_use %d + free %d + quarantined %d != %d",
			p.inUse, p.free, p.quarantine.len(), p.blockCount)
	}
	if dup != nil {
		return api.NewError(api.ErrCodeInternal, "pool invariant violated").
			WithContext("pool_id", p.id.String()).
			WithCause(dup)
	}
	return nil
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

var (
	_ api.BlockAllocator[Block] = (*Pool)(nil)
	_ api.Validator             = (*Pool)(nil)
)
