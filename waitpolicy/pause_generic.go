//go:build !amd64 && !arm64

package waitpolicy

import "runtime"

// cpuPause has no dedicated instruction on this architecture; yielding the
// scheduler is the closest available hint.
func cpuPause() {
	runtime.Gosched()
}
