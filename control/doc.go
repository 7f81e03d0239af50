// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-mempool.
//
// Provides:
//   - Debug probe registration and state dumps (api.Debug)
//   - A metrics registry holding copied pool statistics, safe to read from
//     goroutines other than the one that owns a pool
//   - Platform probes (CPUs, page size)
//
// Pools themselves are single-threaded; probes that call into a pool must be
// evaluated on the pool's goroutine. Publish snapshots into MetricsRegistry
// when another goroutine needs to read them.
package control
