// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for pool monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-mempool/api"
)

// MetricsRegistry holds copies of metrics published by their owners.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// PublishPool copies src's current stats into the registry under
// "pool.<name>". Call it from the goroutine that owns the pool.
func (mr *MetricsRegistry) PublishPool(name string, src api.StatsSource) {
	mr.Set("pool."+name, src.Stats())
}

// Pool returns the last published stats for name.
func (mr *MetricsRegistry) Pool(name string) (api.PoolStats, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	st, ok := mr.metrics["pool."+name].(api.PoolStats)
	return st, ok
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
