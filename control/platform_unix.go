//go:build unix

// control/platform_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix platform probes.

package control

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// RegisterPlatformProbes sets platform debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.page_size", func() any {
		return unix.Getpagesize()
	})
}
