// Package api
// Author: momentics
//
// Live debug and contract validation support for production workloads.

package api

// Debug exposes runtime introspection and health API.
type Debug interface {
	// DumpState emits a snapshot of system state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}

// Validator is implemented by components that can audit their own
// internal invariants on demand. Validation may be O(n); it is meant
// for tests and diagnostics, never for hot paths.
type Validator interface {
	Validate() error
}
