//go:build amd64

package waitpolicy

func cpuPause()
