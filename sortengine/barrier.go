package sortengine

import (
	"cmp"
	"sync"

	bsortbarrier "github.com/arrowlanding/bsort/barrier"
	"github.com/arrowlanding/bsort/factory"
	"github.com/arrowlanding/bsort/merge"
	"github.com/arrowlanding/bsort/waitpolicy"
)

// sortBarrier coordinates via a shared Barrier: each worker owns a fixed
// block of segments, local sorts it, then rendezvous with every other
// worker at the barrier after local sort and after every (k, j) stage. The
// barrier's synchronizes-with contract is what makes a stage's writes
// visible to the next stage's readers.
func sortBarrier[T cmp.Ordered](seq []T, numThreads, segmentSize, numSegs int, strategy waitpolicy.Strategy, opts Options) error {
	b := factory.MakeBarrier(opts.barrierVariant())
	if b == nil {
		b = bsortbarrier.NewSense()
	}
	steps := networkSteps(numSegs)

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for t := 0; t < numThreads; t++ {
		t := t
		go func() {
			defer wg.Done()
			barrierWorker[T](seq, t, numThreads, segmentSize, numSegs, steps, b, strategy)
		}()
	}
	wg.Wait()
	return nil
}

func barrierWorker[T cmp.Ordered](seq []T, threadID, numThreads, segmentSize, numSegs int, steps []networkStep, b bsortbarrier.Barrier, strategy waitpolicy.Strategy) {
	lo, hi := blockRange(threadID, numThreads, numSegs)
	buf := make([]T, 2*segmentSize)

	localSortRange[T](seq, segmentSize, lo, hi)
	b.Wait(numThreads, strategy)

	for _, step := range steps {
		for i := lo; i < hi; i++ {
			ij := i ^ step.j
			if i >= ij {
				continue
			}
			a := segment(seq, i, segmentSize)
			bSeg := segment(seq, ij, segmentSize)
			if i&step.k == 0 {
				merge.Up(a, bSeg, buf)
			} else {
				merge.Dn(a, bSeg, buf)
			}
		}
		b.Wait(numThreads, strategy)
	}
}
