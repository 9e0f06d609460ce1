package config

import (
	"log/slog"

	"github.com/arrowlanding/bsort/factory"
	"github.com/arrowlanding/bsort/sortengine"
	"github.com/arrowlanding/bsort/waitpolicy"
)

// WaitPolicy names one of the three standard wait strategies.
type WaitPolicy string

const (
	WaitBurn  WaitPolicy = "burn"
	WaitYield WaitPolicy = "yield"
	WaitPause WaitPolicy = "pause"
)

// Strategy resolves the named policy to a waitpolicy.Strategy, defaulting
// to Yield for an unrecognized value.
func (p WaitPolicy) Strategy() waitpolicy.Strategy {
	switch p {
	case WaitBurn:
		return waitpolicy.Burn
	case WaitPause:
		return waitpolicy.Pause
	default:
		return waitpolicy.Yield
	}
}

// SortMode names one of sortengine's five coordination strategies.
type SortMode string

const (
	ModeSequential       SortMode = "sequential"
	ModeForkJoin         SortMode = "forkjoin"
	ModeBarrier          SortMode = "barrier"
	ModeLockFree         SortMode = "lockfree"
	ModeStealing         SortMode = "stealing"
	ModeStealingWaitFree SortMode = "stealing_waitfree"
)

// Mode resolves the named mode to a sortengine.Mode, defaulting to
// Sequential for an unrecognized value.
func (m SortMode) Mode() sortengine.Mode {
	switch m {
	case ModeForkJoin:
		return sortengine.ForkJoin
	case ModeBarrier:
		return sortengine.Barrier
	case ModeLockFree:
		return sortengine.LockFree
	case ModeStealing:
		return sortengine.Stealing
	case ModeStealingWaitFree:
		return sortengine.StealingWaitFree
	default:
		return sortengine.Sequential
	}
}

// BarrierVariant names one of the two Barrier implementations.
type BarrierVariant string

const (
	BarrierSense BarrierVariant = "sense"
	BarrierStep  BarrierVariant = "step"
)

// Tag resolves the named variant to a factory.BarrierVariant, defaulting to
// sense for an unrecognized value.
func (v BarrierVariant) Tag() factory.BarrierVariant {
	if v == BarrierStep {
		return factory.BarrierStep
	}
	return factory.BarrierSense
}

// Config holds the options this library's callers can tune at startup.
type Config struct {
	DataShift      int
	SegmentSize    int
	NumThreads     int
	WaitPolicy     WaitPolicy
	SortMode       SortMode
	BarrierVariant BarrierVariant

	// Logger receives non-fatal diagnostics. Not part of the flag/env
	// surface; embedders set it programmatically. Defaults to slog.Default.
	Logger *slog.Logger
}

// Default returns the built-in defaults: data_shift=20 (2^20 elements),
// segment_size=1024, num_threads=4, wait_policy=yield, sort_mode=sequential,
// barrier_variant=sense. Yield is the safer general-purpose default over
// burn (wastes CPU under contention) or pause (most effective only under
// very short, bounded waits).
func Default() Config {
	return Config{
		DataShift:      20,
		SegmentSize:    1024,
		NumThreads:     4,
		WaitPolicy:     WaitYield,
		SortMode:       ModeSequential,
		BarrierVariant: BarrierSense,
		Logger:         slog.Default(),
	}
}

// Length is the element count implied by DataShift: 2^DataShift.
func (c Config) Length() int {
	return 1 << c.DataShift
}
