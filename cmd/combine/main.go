// Command combine benchmarks the string combiners on one shared input.
//
// Usage:
//
//	go run ./cmd/combine -n 10000 -len 8 -iters 100
//	go run ./cmd/combine -only fold,mapreduce -budget 5s -progress 1s
//	go run ./cmd/combine -workers 4 -sink channel
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/randomizedcoder/string-combine-benchmarks/internal/bench"
	"github.com/randomizedcoder/string-combine-benchmarks/internal/combine"
	"github.com/randomizedcoder/string-combine-benchmarks/internal/fanin"
	"github.com/randomizedcoder/string-combine-benchmarks/internal/item"
)

// options is the parsed command line.
type options struct {
	count     int
	length    int
	sink      fanin.Kind
	cfg       bench.Config
	combiners []combine.Named
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "combine: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	items := item.Generate(opts.count, opts.length)

	fmt.Printf("Benchmarking string combiners (%d items x %d chars, %d iterations)\n", opts.count, opts.length, opts.cfg.Iterations)
	fmt.Printf("Architecture: %s/%s, GOMAXPROCS=%d, sink=%s\n", runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0), opts.sink)
	fmt.Println("─────────────────────────────────────────────────────────────────────────────────")

	cfg := opts.cfg
	cfg.OnProgress = func(name string, done int) {
		fmt.Printf("  ... %-10s %d/%d\n", name, done, cfg.Iterations)
	}
	runner := bench.NewRunner(cfg)

	results := make([]bench.Result, 0, len(opts.combiners))
	for _, c := range opts.combiners {
		if ctx.Err() != nil {
			break
		}
		results = append(results, runner.Run(ctx, c.Name, func() string {
			return c.Combiner.Combine(items)
		}))
	}

	printResults(os.Stdout, results)
}

// parseFlags parses args into options. Flag syntax errors are reported on
// errOut by the flag package; name lookup errors are returned wrapped.
func parseFlags(args []string, errOut io.Writer) (options, error) {
	defaults := bench.DefaultConfig()

	fs := flag.NewFlagSet("combine", flag.ContinueOnError)
	fs.SetOutput(errOut)

	count := fs.Int("n", 10_000, "number of items")
	length := fs.Int("len", item.DefaultLength, "item length")
	iterations := fs.Int("iters", defaults.Iterations, "timed calls per combiner")
	warmup := fs.Int("warmup", defaults.Warmup, "untimed calls per combiner")
	budget := fs.Duration("budget", defaults.Budget, "time limit per combiner (0 = none)")
	progress := fs.Duration("progress", defaults.Progress, "progress report interval (0 = off)")
	only := fs.String("only", "", "comma separated combiners to run (default all)")
	workers := fs.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	sinkName := fs.String("sink", string(fanin.DefaultKind), "pool fan-in sink: ring or channel")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	sink, err := fanin.ParseKind(*sinkName)
	if err != nil {
		return options{}, fmt.Errorf("-sink: %w", err)
	}
	combiners, err := combine.Lookup(combine.Options{Workers: *workers, Sink: sink}, splitList(*only)...)
	if err != nil {
		return options{}, fmt.Errorf("-only: %w", err)
	}

	cfg := defaults
	cfg.Iterations = *iterations
	cfg.Warmup = *warmup
	cfg.Budget = *budget
	cfg.Progress = *progress

	return options{
		count:     *count,
		length:    *length,
		sink:      sink,
		cfg:       cfg,
		combiners: combiners,
	}, nil
}

func printResults(w io.Writer, results []bench.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "\nNo results.")
		return
	}

	fmt.Fprintf(w, "\nResults:\n")
	fmt.Fprintf(w, "  %-10s %6s %12s %12s %12s %12s %12s %8s %10s\n",
		"combiner", "runs", "mean", "median", "min", "max", "stddev", "speed", "MB/s")

	baseline := results[0].Mean
	for _, r := range results {
		speed := 0.0
		if r.Mean > 0 {
			speed = float64(baseline) / float64(r.Mean)
		}
		note := ""
		if r.Stopped {
			note = "  (stopped early)"
		}
		fmt.Fprintf(w, "  %-10s %6d %12v %12v %12v %12v %12v %7.2fx %10.2f%s\n",
			r.Name, r.N, round(r.Mean), round(r.Median), round(r.Min), round(r.Max), round(r.StdDev),
			speed, r.Throughput(), note)
	}

	fmt.Fprintf(w, "\nNote: speed is relative to %s; mapreduce keeps pairwise whole-string joins on purpose.\n", results[0].Name)
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Microsecond)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
