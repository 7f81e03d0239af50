// File: pool/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "log/slog"

// Config holds parameters fixed for the lifetime of a Pool.
type Config struct {
	BlockSize  int              // Size of every block in bytes
	BlockCount int              // Number of blocks; the pool never grows
	Backing    BackingAllocator // Source of the backing buffer
	Quarantine int              // Freed blocks held back FIFO before reuse; 0 keeps strict LIFO
	Poison     int              // Byte written over freed backing blocks; negative disables
	Logger     *slog.Logger     // Lifecycle logger; nil keeps the pool silent
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		BlockSize:  64,            // one cache line
		BlockCount: 1024,          // 64 KiB arena
		Backing:    HeapBacking(), // Go heap
		Quarantine: 0,             // immediate LIFO reuse
		Poison:     -1,            // no poisoning
	}
}

// Option customizes pool initialization.
type Option func(*Config)

// WithBacking selects the backing buffer allocator.
func WithBacking(b BackingAllocator) Option {
	return func(c *Config) {
		c.Backing = b
	}
}

// WithQuarantine delays reuse of freed blocks: up to n freed blocks are
// parked in FIFO order before rejoining the free list.
func WithQuarantine(n int) Option {
	return func(c *Config) {
		c.Quarantine = n
	}
}

// WithPoison fills freed blocks with b. Only the backing buffer seen
// through Bytes and Addr is poisoned; Arena slots are zeroed on Free
// instead.
func WithPoison(b byte) Option {
	return func(c *Config) {
		c.Poison = int(b)
	}
}

// WithLogger attaches a structured logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
