// Package sortengine implements segmented bitonic merge sort in five
// coordination strategies sharing one dependency structure: a fixed network
// of (k, j) stages over segment indices, where stage (k, j) pairs segment i
// with i^j whenever i < i^j, merging ascending if i&k == 0 and descending
// otherwise.
//
// The five modes differ only in how they get every thread through that
// network without a thread reading a segment another thread is still
// writing:
//
//   - Sequential: no coordination needed, one thread does everything.
//   - ForkJoin: golang.org/x/sync/errgroup re-forks workers every stage and
//     joins them before starting the next, an implicit barrier supplied by
//     an external parallel runtime instead of one this library owns.
//   - Barrier: persistent workers call barrier.Barrier.Wait after local sort
//     and after every stage.
//   - LockFree: no barrier at all; a shared vector of per-segment atomic
//     stage counters lets a worker detect exactly when a segment it needs is
//     ready, adapted from the ABA-avoiding step/stamp counters in
//     gsingh's lock-free ring buffer.
//   - Stealing / StealingWaitFree: workers defer merges as queue.Task values
//     instead of running them inline, modeled on go-foundations-workerpool's
//     round-robin work-stealing loop; StealingWaitFree additionally gates
//     stealing on a per-thread stage comparison instead of a barrier, so a
//     thief never removes work a victim still needs for its own stage.
package sortengine
