package combine

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/string-combine-benchmarks/internal/fanin"
)

// ErrUnknownCombiner is returned by Lookup for names not in All.
var ErrUnknownCombiner = errors.New("combine: unknown combiner")

// Named pairs a Combiner with the name used in reports and flags.
type Named struct {
	Name     string
	Combiner Combiner
}

// Options configures the concurrent combiners returned by All.
type Options struct {
	// Workers is passed to MapReduce.Batches, Pool.Workers and
	// Stream.Concurrency. Zero means runtime.GOMAXPROCS(0).
	Workers int

	// Sink selects the Pool's fan-in implementation.
	Sink fanin.Kind
}

// All returns every combiner in canonical order, fold first.
func All(opts Options) []Named {
	return []Named{
		{"fold", Fold{}},
		{"collect", Collect{}},
		{"mapreduce", MapReduce{Batches: opts.Workers}},
		{"pool", Pool{Workers: opts.Workers, Sink: opts.Sink}},
		{"stream", Stream{Concurrency: opts.Workers}},
	}
}

// Lookup returns the named combiners in the order given.
// With no names it returns All(opts).
func Lookup(opts Options, names ...string) ([]Named, error) {
	all := All(opts)
	if len(names) == 0 {
		return all, nil
	}

	out := make([]Named, 0, len(names))
	for _, name := range names {
		found := false
		for _, n := range all {
			if n.Name == name {
				out = append(out, n)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCombiner, name)
		}
	}
	return out, nil
}
