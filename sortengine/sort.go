package sortengine

import (
	"cmp"
	"context"

	"github.com/arrowlanding/bsort/waitpolicy"
)

// Sort sorts seq in place, ascending, using the given coordination mode.
// Preconditions: len(seq) is a positive multiple of segmentSize; segmentSize
// and numSegments := len(seq)/segmentSize are powers of two; numSegments %
// numThreads == 0 for parallel modes. Sort does not validate these — a
// caller that violates them gets a hang or an incorrect result.
//
// ctx governs only the setup path (goroutine spawn, buffer allocation); once
// workers are running there is no cancellation or timeout.
func Sort[T cmp.Ordered](ctx context.Context, seq []T, mode Mode, numThreads, segmentSize int, strategy waitpolicy.Strategy, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(seq) == 0 {
		return nil
	}

	numSegs := len(seq) / segmentSize

	switch mode {
	case Sequential:
		sortSequential(seq, segmentSize, numSegs)
		return nil
	case ForkJoin:
		return sortForkJoin(ctx, seq, numThreads, segmentSize, numSegs)
	case Barrier:
		return sortBarrier(seq, numThreads, segmentSize, numSegs, strategy, opts)
	case LockFree:
		return sortLockFree(seq, numThreads, segmentSize, numSegs, strategy)
	case Stealing:
		return sortStealing(seq, numThreads, segmentSize, numSegs, strategy, opts, false)
	case StealingWaitFree:
		return sortStealing(seq, numThreads, segmentSize, numSegs, strategy, opts, true)
	default:
		return nil
	}
}
