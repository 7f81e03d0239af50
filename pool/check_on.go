//go:build poolcheck

// File: pool/check_on.go
// Author: momentics <momentics@gmail.com>
//
// In poolcheck builds, enforce block ownership on every transition.

package pool

import "fmt"

// ChecksEnabled reports whether misuse assertions are compiled in.
const ChecksEnabled = true

func newOwnership(n int) []bool { return make([]bool, n) }

func checkAllocate(p *Pool, b Block) {
	if p.owned[b] {
		panic(fmt.Sprintf("poolcheck: pool %s handed out block %d twice", p.id, b))
	}
	p.owned[b] = true
}

func checkDeallocate(p *Pool, b Block) {
	if p.closed {
		panic(fmt.Sprintf("poolcheck: deallocate block %d on closed pool %s", b, p.id))
	}
	if b < 0 || int(b) >= p.blockCount {
		panic(fmt.Sprintf("poolcheck: block %d does not belong to pool %s", b, p.id))
	}
	if !p.owned[b] {
		panic(fmt.Sprintf("poolcheck: double free of block %d in pool %s", b, p.id))
	}
	p.owned[b] = false
}

func checkClose(p *Pool) {
	if p.inUse != 0 {
		panic(fmt.Sprintf("poolcheck: pool %s closed with %d blocks outstanding", p.id, p.inUse))
	}
}
