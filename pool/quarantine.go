// File: pool/quarantine.go
// Author: momentics <momentics@gmail.com>
//
// FIFO parking area for freed blocks. Holding freed blocks back for a while
// makes use-after-free bugs surface as stale data instead of silent reuse.

package pool

import "github.com/eapache/queue"

type quarantine struct {
	limit int
	q     *queue.Queue
}

func newQuarantine(limit int) *quarantine {
	if limit <= 0 {
		return nil
	}
	return &quarantine{limit: limit, q: queue.New()}
}

// park adds b and returns the oldest block once more than limit are held,
// or NoBlock.
func (qr *quarantine) park(b Block) Block {
	qr.q.Add(b)
	if qr.q.Length() <= qr.limit {
		return NoBlock
	}
	return qr.q.Remove().(Block)
}

// evict returns the oldest parked block, or NoBlock when empty.
func (qr *quarantine) evict() Block {
	if qr == nil || qr.q.Length() == 0 {
		return NoBlock
	}
	return qr.q.Remove().(Block)
}

func (qr *quarantine) len() int {
	if qr == nil {
		return 0
	}
	return qr.q.Length()
}

// each visits parked blocks oldest first.
func (qr *quarantine) each(fn func(Block)) {
	if qr == nil {
		return
	}
	for i := 0; i < qr.q.Length(); i++ {
		fn(qr.q.Get(i).(Block))
	}
}
