package combine

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/destel/rill"
)

// Stream pushes items through a channel pipeline: an order-preserving
// concurrent map formats them, and a single consumer appends the results
// to the output in arrival (= input) order.
type Stream struct {
	// Concurrency is the number of formatting goroutines.
	// Zero means runtime.GOMAXPROCS(0).
	Concurrency int
}

// ViaStream combines items with a default Stream.
func ViaStream(items []string) string {
	return Stream{}.Combine(items)
}

// Combine implements Combiner.
func (s Stream) Combine(items []string) string {
	out, err := s.combine(items, func(it string) (string, error) {
		return Wrap(it), nil
	})
	if err != nil {
		panic(fmt.Sprintf("combine: stream: %v", err))
	}
	return out
}

// combine runs the pipeline with an arbitrary formatter and returns the
// first formatting error, if any.
func (s Stream) combine(items []string, format func(string) (string, error)) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	n := s.Concurrency
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	wrapped := rill.OrderedMap(rill.FromSlice(items, nil), n, format)

	var b strings.Builder
	b.Grow(OutputSize(items))
	err := rill.ForEach(wrapped, 1, func(w string) error {
		b.WriteString(w)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
