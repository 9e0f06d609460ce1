package sortengine

import (
	"cmp"
	"sync"
	"sync/atomic"

	bsortbarrier "github.com/arrowlanding/bsort/barrier"
	"github.com/arrowlanding/bsort/factory"
	"github.com/arrowlanding/bsort/merge"
	"github.com/arrowlanding/bsort/queue"
	"github.com/arrowlanding/bsort/waitpolicy"
)

// sortStealing is the task-stealing mode (and, when waitFree is set, its
// wait-free refinement). Ownership of segment blocks is static, exactly as
// in sortBarrier, but a worker never merges inline: it enqueues every merge
// it owns for the current stage into its own TaskQueue, drains that queue,
// then synchronizes with its peers before moving to the next stage. While
// waiting — at the barrier in the plain variant, or inside a task's own
// dependency spin in the wait-free variant — the installed wait strategy
// is a steal closure that visits peer queues round-robin starting at
// self+1 and executes whatever it finds, modeled on
// go-foundations-workerpool's work-stealing distribution strategy.
func sortStealing[T cmp.Ordered](seq []T, numThreads, segmentSize, numSegs int, strategy waitpolicy.Strategy, opts Options, waitFree bool) error {
	queues := make([]queue.TaskQueue, numThreads)
	for t := range queues {
		q := factory.MakeQueue(opts.queueVariant())
		if q == nil {
			q = queue.NewBlocking()
		}
		queues[t] = q
	}
	steps := networkSteps(numSegs)

	if waitFree {
		counts := make([]atomic.Uint64, numSegs)
		stages := make([]atomic.Uint64, numThreads)

		var wg sync.WaitGroup
		wg.Add(numThreads)
		for t := 0; t < numThreads; t++ {
			t := t
			go func() {
				defer wg.Done()
				waitFreeStealingWorker[T](seq, t, numThreads, segmentSize, numSegs, steps, queues, counts, &stages[t], &stages, strategy)
			}()
		}
		wg.Wait()
		return nil
	}

	b := factory.MakeBarrier(opts.barrierVariant())
	if b == nil {
		b = bsortbarrier.NewSense()
	}

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for t := 0; t < numThreads; t++ {
		t := t
		go func() {
			defer wg.Done()
			stealingWorker[T](seq, t, numThreads, segmentSize, numSegs, steps, queues, b, strategy)
		}()
	}
	wg.Wait()
	return nil
}

// drainStrategy returns a wait strategy that, on every spin iteration,
// tries to pop and run one task from the next peer queue in round-robin
// order starting at self+1, and also drains the caller's own queue so a
// worker waiting at a barrier keeps helping even after its local work is
// exhausted.
func drainStrategy(selfID int, queues []queue.TaskQueue, fallback waitpolicy.Strategy) waitpolicy.Strategy {
	next := (selfID + 1) % len(queues)
	return func() {
		for attempts := 0; attempts < len(queues); attempts++ {
			victim := next
			next = (next + 1) % len(queues)
			if task, ok := queues[victim].Pop(); ok {
				task()
				return
			}
		}
		fallback()
	}
}

func drainAll(q queue.TaskQueue) {
	for {
		task, ok := q.Pop()
		if !ok {
			return
		}
		task()
	}
}

func stealingWorker[T cmp.Ordered](seq []T, threadID, numThreads, segmentSize, numSegs int, steps []networkStep, queues []queue.TaskQueue, b bsortbarrier.Barrier, strategy waitpolicy.Strategy) {
	lo, hi := blockRange(threadID, numThreads, numSegs)
	steal := drainStrategy(threadID, queues, strategy)
	own := queues[threadID]

	localSortRange[T](seq, segmentSize, lo, hi)
	// First barrier: nothing to drain yet this phase, but it still
	// synchronizes local-sort completion across every worker before any
	// merge task is enqueued for this stage.
	b.Wait(numThreads, steal)

	for _, step := range steps {
		for i := lo; i < hi; i++ {
			ij := i ^ step.j
			if i >= ij {
				continue
			}
			i, ij, ascending := i, ij, i&step.k == 0
			own.Push(func() {
				a := segment(seq, i, segmentSize)
				b := segment(seq, ij, segmentSize)
				// Allocated per task rather than reused from a per-worker
				// buffer: a stolen task can run on any thread, so the
				// buffer can't be threaded in through the worker's own
				// stack frame the way the other modes do it.
				buf := make([]T, 2*segmentSize)
				if ascending {
					merge.Up(a, b, buf)
				} else {
					merge.Dn(a, b, buf)
				}
			})
		}

		drainAll(own)
		b.Wait(numThreads, steal)
	}
}

func waitFreeStealingWorker[T cmp.Ordered](seq []T, threadID, numThreads, segmentSize, numSegs int, steps []networkStep, queues []queue.TaskQueue, counts []atomic.Uint64, myStage *atomic.Uint64, allStages *[]atomic.Uint64, strategy waitpolicy.Strategy) {
	lo, hi := blockRange(threadID, numThreads, numSegs)
	own := queues[threadID]

	localSortRange[T](seq, segmentSize, lo, hi)
	for id := lo; id < hi; id++ {
		counts[id].Store(1)
	}
	myStage.Store(1)

	gatedSteal := gatedStealStrategy(threadID, queues, myStage, allStages, strategy)

	for _, step := range steps {
		stage := myStage.Load()
		for i := lo; i < hi; i++ {
			ij := i ^ step.j
			if i >= ij {
				continue
			}
			i, ij, ascending := i, ij, i&step.k == 0
			own.Push(func() {
				waitForStage(counts, i, stage, gatedSteal)
				waitForStage(counts, ij, stage, gatedSteal)

				a := segment(seq, i, segmentSize)
				b := segment(seq, ij, segmentSize)
				// Same per-task allocation tradeoff as the plain stealing
				// worker: a stolen task carries its own scratch buffer
				// since it can't assume which thread will run it.
				buf := make([]T, 2*segmentSize)
				if ascending {
					merge.Up(a, b, buf)
				} else {
					merge.Dn(a, b, buf)
				}

				counts[i].Add(1)
				counts[ij].Add(1)
			})
		}

		for {
			task, ok := own.Pop()
			if !ok {
				break
			}
			task()
		}
		myStage.Add(1)
	}
}

// gatedStealStrategy is the wait-free refinement's steal closure: a thief
// only attempts thread j's queue while thread_stage[self] > thread_stage[j]
// — proof thief has nothing left to do for j's stage, and that j still
// needs the work itself otherwise. This is the one change from the plain
// barrier-driven stealing strategy: eligibility is a local comparison
// instead of "every peer is safe because we're all at the same barrier
// phase".
func gatedStealStrategy(selfID int, queues []queue.TaskQueue, myStage *atomic.Uint64, allStages *[]atomic.Uint64, fallback waitpolicy.Strategy) waitpolicy.Strategy {
	next := (selfID + 1) % len(queues)
	return func() {
		self := myStage.Load()
		stages := *allStages
		for attempts := 0; attempts < len(queues); attempts++ {
			victim := next
			next = (next + 1) % len(queues)
			if victim == selfID {
				continue
			}
			if self <= stages[victim].Load() {
				continue
			}
			if task, ok := queues[victim].Pop(); ok {
				task()
				return
			}
		}
		fallback()
	}
}
