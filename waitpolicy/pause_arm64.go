//go:build arm64

package waitpolicy

func cpuPause()
