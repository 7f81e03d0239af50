// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: fixed-block allocators and their accounting.

package api

// BlockAllocator hands out fixed-size blocks by handle.
// Implementations are not safe for concurrent use unless stated otherwise.
type BlockAllocator[B comparable] interface {
	// Allocate returns a free block, or ok == false when none is left.
	Allocate() (b B, ok bool)

	// Deallocate returns a block to the allocator.
	Deallocate(b B)

	// Stats exposes accounting for observability.
	Stats() PoolStats
}

// PoolStats aggregates block allocation/reuse stats.
type PoolStats struct {
	ID          string `json:"id"`
	BlockSize   int    `json:"block_size"`
	BlockCount  int    `json:"block_count"`
	InUse       int    `json:"in_use"`
	Free        int    `json:"free"`
	Quarantined int    `json:"quarantined"`
	TotalAlloc  uint64 `json:"total_alloc"`
	TotalFree   uint64 `json:"total_free"`
	Exhausted   uint64 `json:"exhausted"`
	Backing     string `json:"backing"`
}

// StatsSource is anything that can report PoolStats.
type StatsSource interface {
	Stats() PoolStats
}
