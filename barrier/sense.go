package barrier

import (
	"sync/atomic"

	"github.com/arrowlanding/bsort/waitpolicy"
)

// Sense is a sense-reversing barrier: the last arrival flips epoch to its
// bitwise complement, and waiters spin until the epoch they observed on
// arrival no longer matches. Two quiescent states (epoch, ^epoch) alternate
// across phases, which is enough for unbounded reuse since a waiter only
// ever needs to detect "has changed", never a particular target value.
type Sense struct {
	spinning atomic.Int64
	_        [cacheLinePad]byte
	epoch    atomic.Uint64
	_        [cacheLinePad]byte
}

// NewSense constructs a sense-reversing barrier ready for its first phase.
func NewSense() *Sense {
	return &Sense{}
}

func (b *Sense) Wait(numThreads int, strategy waitpolicy.Strategy) {
	local := b.epoch.Load()

	pre := b.spinning.Add(1) - 1
	if int(pre) < numThreads-1 {
		for b.epoch.Load() == local {
			strategy()
		}
		return
	}

	// Last arrival: quiesce the counter before publishing the new epoch so
	// that no waiter can observe spinning != 0 after seeing the flip.
	b.spinning.Store(0)
	b.epoch.Store(^local)
}
