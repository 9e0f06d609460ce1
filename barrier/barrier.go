package barrier

import "github.com/arrowlanding/bsort/waitpolicy"

// cacheLinePad is sized to isolate a single atomic word onto its own cache
// line on the common 64-byte-line architectures this library targets.
const cacheLinePad = 64 - 8

// Barrier is an N-thread rendezvous point. A single instance may be reused
// across an unbounded sequence of phases, including phases that declare a
// different participant count than the phase before it, provided exactly
// that many callers invoke Wait before any participant begins the next
// phase.
//
// Misuse — fewer than numThreads callers in a phase — hangs; Barrier does
// not validate its precondition and has no timeout.
type Barrier interface {
	// Wait blocks the caller until exactly numThreads distinct callers have
	// invoked Wait in the current phase. strategy is invoked once per spin
	// iteration for every caller that isn't the last arrival.
	Wait(numThreads int, strategy waitpolicy.Strategy)
}
