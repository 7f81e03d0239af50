//go:build !unix

// control/platform_other.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"os"
	"runtime"
)

// RegisterPlatformProbes sets platform debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.page_size", func() any {
		return os.Getpagesize()
	})
}
