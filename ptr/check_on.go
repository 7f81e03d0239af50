//go:build poolcheck

// File: ptr/check_on.go
// Author: momentics <momentics@gmail.com>

package ptr

func checkLive(rc *refCount) {
	if rc.released {
		panic("poolcheck: control block used after release")
	}
	if rc.owners < 0 || rc.observers < 0 {
		panic("poolcheck: control block count underflow")
	}
}
