// Package bench times repeated calls to a combiner and summarizes the
// samples.
//
// A Runner makes Warmup untimed calls, then up to Iterations timed calls.
// A run ends early when its time Budget is spent or its context is
// cancelled; both set a per-run atomic flag that the timed loop checks
// once per iteration. Progress callbacks are rate limited with
// runtime.nanotime.
package bench

import "time"

// Config controls a Runner.
type Config struct {
	// Iterations is the maximum number of timed calls per run.
	Iterations int

	// Warmup is the number of untimed calls before measuring.
	Warmup int

	// Budget caps the wall-clock time of the timed calls.
	// Zero means no limit.
	Budget time.Duration

	// Progress is the minimum interval between OnProgress callbacks.
	// Zero disables progress reporting.
	Progress time.Duration

	// OnProgress, if set, receives the run name and completed iterations.
	OnProgress func(name string, done int)
}

// Defaults used by DefaultConfig.
const (
	DefaultIterations = 100
	DefaultWarmup     = 3
)

// DefaultConfig returns a Config with the default iteration counts and no
// budget or progress reporting.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Warmup:     DefaultWarmup,
	}
}

// Result is the outcome of one run.
type Result struct {
	Name string
	Stats

	// OutputBytes is the length of the string returned by the last call.
	OutputBytes int

	// Stopped is true if the run ended before Iterations calls.
	Stopped bool
}

// Throughput returns output megabytes (1e6 bytes) produced per second,
// based on the mean call time.
func (r Result) Throughput() float64 {
	if r.Mean <= 0 {
		return 0
	}
	return float64(r.OutputBytes) / r.Mean.Seconds() / 1e6
}
