package sortengine

import (
	"cmp"
	"sync"
	"sync/atomic"

	"github.com/arrowlanding/bsort/merge"
	"github.com/arrowlanding/bsort/waitpolicy"
)

// sortLockFree replaces the barrier with a shared vector of per-segment
// atomic stage counters — count[seg] is the number of stages segment seg
// has completed. A worker about to merge segments i and ij spins until
// both counters read its private myStage, performs the merge, then bumps
// both counters. Every producer only ever increments its own writes'
// counters after the write is complete, so a reader that observes
// count[seg] == myStage has proof every earlier writer to seg is done.
func sortLockFree[T cmp.Ordered](seq []T, numThreads, segmentSize, numSegs int, strategy waitpolicy.Strategy) error {
	counts := make([]atomic.Uint64, numSegs)
	steps := networkSteps(numSegs)

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for t := 0; t < numThreads; t++ {
		t := t
		go func() {
			defer wg.Done()
			lockFreeWorker[T](seq, t, numThreads, segmentSize, numSegs, steps, counts, strategy)
		}()
	}
	wg.Wait()
	return nil
}

func lockFreeWorker[T cmp.Ordered](seq []T, threadID, numThreads, segmentSize, numSegs int, steps []networkStep, counts []atomic.Uint64, strategy waitpolicy.Strategy) {
	lo, hi := blockRange(threadID, numThreads, numSegs)
	buf := make([]T, 2*segmentSize)

	localSortRange[T](seq, segmentSize, lo, hi)
	for id := lo; id < hi; id++ {
		counts[id].Store(1)
	}

	myStage := uint64(1)
	for _, step := range steps {
		for i := lo; i < hi; i++ {
			ij := i ^ step.j
			if i >= ij {
				continue
			}

			waitForStage(counts, i, myStage, strategy)
			waitForStage(counts, ij, myStage, strategy)

			a := segment(seq, i, segmentSize)
			b := segment(seq, ij, segmentSize)
			if i&step.k == 0 {
				merge.Up(a, b, buf)
			} else {
				merge.Dn(a, b, buf)
			}

			counts[i].Add(1)
			counts[ij].Add(1)
		}
		myStage++
	}
}

// waitForStage spins, invoking strategy each iteration, until counts[seg]
// reaches target. Sequential consistency on the stage counters is stronger
// than the acquire-on-load/release-on-store the protocol requires, and is
// what sync/atomic provides.
func waitForStage(counts []atomic.Uint64, seg int, target uint64, strategy func()) {
	for counts[seg].Load() != target {
		strategy()
	}
}
