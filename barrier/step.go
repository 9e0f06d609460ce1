package barrier

import (
	"sync/atomic"

	"github.com/arrowlanding/bsort/waitpolicy"
)

// Step is a monotonic-epoch barrier: the last arrival increments epoch by
// one instead of flipping it. Unsigned wraparound of epoch after 2^64
// phases is defined behavior, not a bug — a waiter only ever compares its
// locally observed epoch for equality, so wrapping past it is harmless.
type Step struct {
	spinning atomic.Int64
	_        [cacheLinePad]byte
	epoch    atomic.Uint64
	_        [cacheLinePad]byte
}

// NewStep constructs a step barrier ready for its first phase.
func NewStep() *Step {
	return &Step{}
}

func (b *Step) Wait(numThreads int, strategy waitpolicy.Strategy) {
	local := b.epoch.Load()

	pre := b.spinning.Add(1) - 1
	if int(pre) < numThreads-1 {
		for b.epoch.Load() == local {
			strategy()
		}
		return
	}

	b.spinning.Store(0)
	b.epoch.Add(1) // wraps at 2^64; defined and expected
}
