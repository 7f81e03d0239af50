//go:build !poolcheck

package ptr

func checkLive(*refCount) {}
