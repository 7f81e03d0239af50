// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"sync"

	"github.com/momentics/hioload-mempool/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// UnregisterProbe removes a named hook.
func (dp *DebugProbes) UnregisterProbe(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.probes, name)
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RegisterPool exposes src's stats under "pool.<name>". If src also
// implements api.Validator, its verdict is exposed under "pool.<name>.valid".
func RegisterPool(dp *DebugProbes, name string, src api.StatsSource) {
	dp.RegisterProbe("pool."+name, func() any {
		return src.Stats()
	})
	if v, ok := src.(api.Validator); ok {
		dp.RegisterProbe("pool."+name+".valid", func() any {
			if err := v.Validate(); err != nil {
				return err.Error()
			}
			return "ok"
		})
	}
}

var _ api.Debug = (*DebugProbes)(nil)
