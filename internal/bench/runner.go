package bench

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// Runner times functions according to its Config. A Runner holds no
// per-run state and may be shared by concurrent Run calls.
type Runner struct {
	cfg Config
}

// NewRunner creates a Runner. Negative counts are treated as zero.
func NewRunner(cfg Config) *Runner {
	cfg.Iterations = max(cfg.Iterations, 0)
	cfg.Warmup = max(cfg.Warmup, 0)
	return &Runner{cfg: cfg}
}

// Run calls fn Warmup times untimed, then up to Iterations times timed,
// and returns the summarized samples.
//
// The run stops early, with Result.Stopped set, once the Budget has
// elapsed or ctx is cancelled. Warmup calls are skipped if ctx is already
// done.
func (r *Runner) Run(ctx context.Context, name string, fn func() string) Result {
	var stopped atomic.Bool
	cancel := func() { stopped.Store(true) }

	if ctx.Err() != nil {
		cancel()
	}
	unregister := context.AfterFunc(ctx, cancel)
	defer unregister()

	var out string
	for i := 0; i < r.cfg.Warmup && !stopped.Load(); i++ {
		out = fn()
	}

	if r.cfg.Budget > 0 {
		timer := time.AfterFunc(r.cfg.Budget, cancel)
		defer timer.Stop()
	}

	report := newProgress(name, r.cfg.Progress, r.cfg.OnProgress)

	samples := make([]time.Duration, 0, r.cfg.Iterations)
	for i := 0; i < r.cfg.Iterations; i++ {
		if stopped.Load() {
			break
		}
		start := time.Now()
		out = fn()
		samples = append(samples, time.Since(start))

		report.update(i + 1)
	}
	// Keep the last output reachable so the calls are not optimized away.
	runtime.KeepAlive(out)

	return Result{
		Name:        name,
		Stats:       Summarize(samples),
		OutputBytes: len(out),
		Stopped:     len(samples) < r.cfg.Iterations,
	}
}
