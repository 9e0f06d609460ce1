// Package queue implements a minimal concurrent FIFO of zero-argument
// deferred actions, the coordination primitive the work-stealing sort modes
// use to hand merge tasks between threads.
//
// The shape — a mutex-guarded slice with head-index compaction — is adapted
// from surge's internal task queue, with one behavioral change: Pop here
// never blocks, returning a sentinel immediately on an empty queue so a
// stealer can move on to the next victim, where surge's queue parks the
// popper on a sync.Cond until a producer arrives.
package queue
