package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// Diagnostic records one non-fatal parse failure: the option (or argument)
// that could not be parsed, where the bad value was found ("cli",
// "env:NAME", or "value" for an unrecognized name), and the error. The bad
// value is not applied.
type Diagnostic struct {
	Option string
	Source string
	Err    error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("config: %s from %s: %v (default kept)", d.Option, d.Source, d.Err)
}

// Load parses args (CLI flags of the form --name=value) overlaid on
// environment variables, overlaid on Default(). It always returns a valid
// Config — a value that fails to parse, overflows, or names no known choice
// is not applied and is reported as a Diagnostic, and the other options
// still load.
func Load(args []string) (Config, []error) {
	cfg := Default()
	var diags []error

	fs := pflag.NewFlagSet("bsort", pflag.ContinueOnError)
	fs.Usage = func() {}
	dataShift := fs.Int("data_shift", cfg.DataShift, "input length is 2^data_shift elements")
	segmentSize := fs.Int("segment_size", cfg.SegmentSize, "segment length in elements")
	numThreads := fs.Int("num_threads", cfg.NumThreads, "worker count")
	waitPolicy := fs.String("wait_policy", string(cfg.WaitPolicy), "burn|yield|pause")
	sortMode := fs.String("sort_mode", string(cfg.SortMode), "sequential|forkjoin|barrier|lockfree|stealing|stealing_waitfree")
	barrierVariant := fs.String("barrier_variant", string(cfg.BarrierVariant), "sense|step")

	// Each argument is parsed on its own so one bad --name=value does not
	// stop the arguments after it from being applied.
	for _, arg := range args {
		if err := fs.Parse([]string{arg}); err != nil {
			diags = append(diags, Diagnostic{Option: arg, Source: "cli", Err: err})
		}
	}

	overlayInt(&cfg.DataShift, "data_shift", "DATA_SHIFT", fs.Changed("data_shift"), *dataShift, &diags)
	overlayInt(&cfg.SegmentSize, "segment_size", "SEGMENT_SIZE", fs.Changed("segment_size"), *segmentSize, &diags)
	overlayInt(&cfg.NumThreads, "num_threads", "NUM_THREADS", fs.Changed("num_threads"), *numThreads, &diags)

	overlayWaitPolicy(&cfg.WaitPolicy, fs.Changed("wait_policy"), *waitPolicy, &diags)
	overlaySortMode(&cfg.SortMode, fs.Changed("sort_mode"), *sortMode, &diags)
	overlayBarrierVariant(&cfg.BarrierVariant, fs.Changed("barrier_variant"), *barrierVariant, &diags)

	for _, d := range diags {
		cfg.Logger.Warn("config parse failure", "error", d)
	}
	return cfg, diags
}

// overlayInt applies flag > env > default precedence for one integer
// option, recording a non-fatal Diagnostic (and keeping the prior value)
// when the environment variable fails to parse. The flag value arrives
// already parsed; flag parse errors are recorded by Load.
func overlayInt(dst *int, flagName, envName string, flagChanged bool, flagValue int, diags *[]error) {
	if flagChanged {
		*dst = flagValue
		return
	}
	if raw, ok := os.LookupEnv(envName); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			*diags = append(*diags, Diagnostic{Option: flagName, Source: "env:" + envName, Err: err})
			return
		}
		*dst = v
	}
}

func overlayWaitPolicy(dst *WaitPolicy, flagChanged bool, flagValue string, diags *[]error) {
	v, ok := resolveString(flagChanged, flagValue, "WAIT_POLICY")
	if !ok {
		return
	}
	switch WaitPolicy(v) {
	case WaitBurn, WaitYield, WaitPause:
		*dst = WaitPolicy(v)
	default:
		*diags = append(*diags, Diagnostic{Option: "wait_policy", Source: "value", Err: fmt.Errorf("unrecognized wait_policy %q", v)})
	}
}

func overlaySortMode(dst *SortMode, flagChanged bool, flagValue string, diags *[]error) {
	v, ok := resolveString(flagChanged, flagValue, "SORT_MODE")
	if !ok {
		return
	}
	switch SortMode(v) {
	case ModeSequential, ModeForkJoin, ModeBarrier, ModeLockFree, ModeStealing, ModeStealingWaitFree:
		*dst = SortMode(v)
	default:
		*diags = append(*diags, Diagnostic{Option: "sort_mode", Source: "value", Err: fmt.Errorf("unrecognized sort_mode %q", v)})
	}
}

func overlayBarrierVariant(dst *BarrierVariant, flagChanged bool, flagValue string, diags *[]error) {
	v, ok := resolveString(flagChanged, flagValue, "BARRIER_VARIANT")
	if !ok {
		return
	}
	switch BarrierVariant(v) {
	case BarrierSense, BarrierStep:
		*dst = BarrierVariant(v)
	default:
		*diags = append(*diags, Diagnostic{Option: "barrier_variant", Source: "value", Err: fmt.Errorf("unrecognized barrier_variant %q", v)})
	}
}

// resolveString picks the raw string value for an option under flag > env
// precedence. ok is false when neither source set the option (default
// stands, nothing to validate).
func resolveString(flagChanged bool, flagValue, envName string) (value string, ok bool) {
	if flagChanged {
		return flagValue, true
	}
	if raw, present := os.LookupEnv(envName); present {
		return raw, true
	}
	return "", false
}
