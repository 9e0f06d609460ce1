package sortengine

import (
	"context"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowlanding/bsort/queue"
	"github.com/arrowlanding/bsort/waitpolicy"
)

func allModes() map[string]Mode {
	return map[string]Mode{
		"sequential":       Sequential,
		"forkjoin":         ForkJoin,
		"barrier":          Barrier,
		"lockfree":         LockFree,
		"stealing":         Stealing,
		"stealingWaitFree": StealingWaitFree,
	}
}

// TestSequentialSortsSmallFixedInput sorts a small fixed input with the
// sequential mode.
func TestSequentialSortsSmallFixedInput(t *testing.T) {
	seq := []int{5, 7, 1, 4, 8, 2, 3, 6}
	err := Sort(context.Background(), seq, Sequential, 1, 2, waitpolicy.Burn, Options{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, seq)
}

// TestBarrierSenseYieldSortsSmallFixedInput sorts the same fixed input with
// the barrier mode, sense-reversing barrier variant, and the yield wait
// strategy.
func TestBarrierSenseYieldSortsSmallFixedInput(t *testing.T) {
	seq := []int{5, 7, 1, 4, 8, 2, 3, 6}
	err := Sort(context.Background(), seq, Barrier, 2, 2, waitpolicy.Yield, Options{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, seq)
}

// TestLockFreeSortsSmallFixedInput sorts the same fixed input with the
// lock-free stage-counter coordination mode.
func TestLockFreeSortsSmallFixedInput(t *testing.T) {
	seq := []int{5, 7, 1, 4, 8, 2, 3, 6}
	err := Sort(context.Background(), seq, LockFree, 2, 2, waitpolicy.Yield, Options{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, seq)
}

// TestEveryModeSortsSmallFixedInput exercises every mode against the same
// small fixed input with num_threads = 2 (except sequential), segment_size = 2.
func TestEveryModeSortsSmallFixedInput(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	input := []int{5, 7, 1, 4, 8, 2, 3, 6}

	for name, mode := range allModes() {
		t.Run(name, func(t *testing.T) {
			numThreads := 2
			if mode == Sequential {
				numThreads = 1
			}
			seq := slices.Clone(input)
			err := Sort(context.Background(), seq, mode, numThreads, 2, waitpolicy.Yield, Options{})
			require.NoError(t, err)
			require.Equal(t, want, seq)
		})
	}
}

// TestRandomLargeInput sorts a random permutation, scaled down from 2^20
// elements for test runtime while keeping the same
// segment_size/num_threads/power-of-two shape; every mode must produce the
// ascending sort.
func TestRandomLargeInput(t *testing.T) {
	const (
		numSegments = 64
		segmentSize = 1024
		numThreads  = 16
	)
	n := numSegments * segmentSize

	r := rand.New(rand.NewSource(42))
	base := r.Perm(n)
	for i := range base {
		base[i]++
	}
	want := slices.Clone(base)
	slices.Sort(want)

	for name, mode := range allModes() {
		t.Run(name, func(t *testing.T) {
			seq := slices.Clone(base)
			err := Sort(context.Background(), seq, mode, numThreads, segmentSize, waitpolicy.Yield, Options{})
			require.NoError(t, err)
			require.Equal(t, want, seq)
		})
	}
}

// TestPermutationProperty checks that every mode preserves the input
// multiset and sorts it, on a random input of 16 segments of 4 elements.
func TestPermutationProperty(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for name, mode := range allModes() {
		t.Run(name, func(t *testing.T) {
			numThreads := 4
			if mode == Sequential {
				numThreads = 1
			}
			segmentSize := 4
			numSegments := 16
			n := segmentSize * numSegments

			input := r.Perm(n)
			seq := slices.Clone(input)
			err := Sort(context.Background(), seq, mode, numThreads, segmentSize, waitpolicy.Burn, Options{})
			require.NoError(t, err)

			gotSorted := slices.Clone(seq)
			slices.Sort(gotSorted)
			wantSorted := slices.Clone(input)
			slices.Sort(wantSorted)
			require.Equal(t, wantSorted, gotSorted)
			require.True(t, slices.IsSorted(seq))
		})
	}
}

// TestDeterminismAcrossModes checks that every mode produces the same,
// bit-equal result for the same input.
func TestDeterminismAcrossModes(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	input := r.Perm(8 * 32)

	var want []int
	for name, mode := range allModes() {
		numThreads := 8
		if mode == Sequential {
			numThreads = 1
		}
		seq := slices.Clone(input)
		err := Sort(context.Background(), seq, mode, numThreads, 32, waitpolicy.Yield, Options{})
		require.NoError(t, err, name)
		if want == nil {
			want = seq
		} else {
			require.Equal(t, want, seq, name)
		}
	}
}

// TestStealingRedistributesDisproportionateLoad gives one worker's queue a
// backlog a hundred times the size of its peers' and runs a round-robin
// steal loop over all of them — the same policy drainStrategy installs for
// a worker idling at the barrier. Every task must still run exactly once,
// and a meaningful share of the heavy queue's backlog must be picked up by
// workers other than its owner rather than left to drain there alone.
func TestStealingRedistributesDisproportionateLoad(t *testing.T) {
	const (
		numWorkers = 4
		heavyTasks = 400
		lightTasks = 4
	)
	total := int64(heavyTasks + lightTasks*(numWorkers-1))

	queues := make([]queue.TaskQueue, numWorkers)
	for i := range queues {
		queues[i] = queue.NewBlocking()
	}

	var executed int64
	task := func() queue.Task {
		return func() { atomic.AddInt64(&executed, 1) }
	}
	for i := 0; i < heavyTasks; i++ {
		queues[0].Push(task())
	}
	for w := 1; w < numWorkers; w++ {
		for i := 0; i < lightTasks; i++ {
			queues[w].Push(task())
		}
	}

	var stolenFromHeavy int64
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		w := w
		go func() {
			defer wg.Done()
			own := queues[w]
			next := (w + 1) % numWorkers
			for atomic.LoadInt64(&executed) < total {
				if t, ok := own.Pop(); ok {
					t()
					continue
				}
				stole := false
				for attempts := 0; attempts < numWorkers; attempts++ {
					victim := next
					next = (next + 1) % numWorkers
					if victim == w {
						continue
					}
					if t, ok := queues[victim].Pop(); ok {
						if victim == 0 {
							atomic.AddInt64(&stolenFromHeavy, 1)
						}
						t()
						stole = true
						break
					}
				}
				if !stole {
					waitpolicy.Yield()
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, total, atomic.LoadInt64(&executed))
	require.Greater(t, atomic.LoadInt64(&stolenFromHeavy), int64(heavyTasks/10))
}
