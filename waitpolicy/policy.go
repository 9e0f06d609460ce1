package waitpolicy

import "runtime"

// Strategy is a zero-argument action invoked on every iteration of a
// spin-wait loop. Strategies may be stateless (Burn, Yield, Pause) or
// capture mutable state — the stealing sort installs a closure that drains
// peer task queues between barrier-wait iterations.
type Strategy func()

// Burn spins at full CPU with no hint to the scheduler or the core. Useful
// when the expected wait is shorter than a context switch.
func Burn() {}

// Yield asks the OS scheduler to deschedule the calling goroutine briefly,
// giving other runnable work a chance to run. Appropriate when the expected
// wait is comparable to or longer than a scheduling quantum.
func Yield() {
	runtime.Gosched()
}

// Pause emits an architecture CPU hint that the core is spinning, reducing
// speculative execution down the not-taken branch and easing power draw.
// Falls back to yielding the scheduler on architectures without a dedicated
// instruction.
func Pause() {
	cpuPause()
}
