package sortengine

import (
	"cmp"
	"math/bits"

	"github.com/arrowlanding/bsort/factory"
)

// Mode selects a coordination strategy for the segmented bitonic merge.
type Mode int

const (
	// Sequential runs local sort and the full network on one goroutine.
	Sequential Mode = iota
	// ForkJoin distributes each stage across workers joined with errgroup.
	ForkJoin
	// Barrier distributes segments statically across persistent workers
	// synchronized by a reusable Barrier.
	Barrier
	// LockFree coordinates via per-segment atomic stage counters instead of
	// a barrier.
	LockFree
	// Stealing defers merges into per-worker task queues, draining peer
	// queues round-robin while waiting at a barrier.
	Stealing
	// StealingWaitFree is Stealing with the barrier replaced by a per-thread
	// stage counter gating which peer queues are safe to steal from.
	StealingWaitFree
)

// Options carries the variant selections SortEngine needs beyond the
// num_threads/segment_size/wait_strategy triple every mode shares.
type Options struct {
	// BarrierVariant selects the Barrier implementation for Barrier and
	// Stealing modes. Zero value defaults to factory.BarrierSense.
	BarrierVariant factory.BarrierVariant
	// QueueVariant selects the TaskQueue implementation for Stealing modes.
	// Zero value defaults to factory.QueueBlocking.
	QueueVariant factory.QueueVariant
}

func (o Options) barrierVariant() factory.BarrierVariant {
	if o.BarrierVariant == "" {
		return factory.BarrierSense
	}
	return o.BarrierVariant
}

func (o Options) queueVariant() factory.QueueVariant {
	if o.QueueVariant == "" {
		return factory.QueueBlocking
	}
	return o.QueueVariant
}

// networkStep is one (k, j) pair of the bitonic merge network's outer loops.
type networkStep struct {
	k, j int
}

// networkSteps enumerates the full bitonic network for numSegments
// segments: k = 2, 4, ..., numSegments; j = k/2, k/4, ..., 1.
func networkSteps(numSegments int) []networkStep {
	var steps []networkStep
	for k := 2; k <= numSegments; k <<= 1 {
		for j := k / 2; j >= 1; j >>= 1 {
			steps = append(steps, networkStep{k: k, j: j})
		}
	}
	return steps
}

// log2 returns floor(log2(n)) for a positive power of two n.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// segment returns the sub-slice of seq for segment id.
func segment[T any](seq []T, id, segmentSize int) []T {
	return seq[id*segmentSize : (id+1)*segmentSize]
}

// blockRange returns the contiguous, disjoint [lo, hi) range of segment ids
// statically owned by threadID out of numThreads workers.
func blockRange(threadID, numThreads, numSegments int) (lo, hi int) {
	perThread := numSegments / numThreads
	lo = threadID * perThread
	hi = lo + perThread
	return lo, hi
}

// localSort sorts every segment of seq in place, ascending.
func localSort[T cmp.Ordered](seq []T, segmentSize, numSegments int) {
	for id := 0; id < numSegments; id++ {
		sortSegment(segment(seq, id, segmentSize))
	}
}

// localSortRange sorts the segments in [lo, hi) in place, ascending.
func localSortRange[T cmp.Ordered](seq []T, segmentSize, lo, hi int) {
	for id := lo; id < hi; id++ {
		sortSegment(segment(seq, id, segmentSize))
	}
}
