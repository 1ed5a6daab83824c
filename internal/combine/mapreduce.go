package combine

import (
	"runtime"

	"github.com/exascience/pargo/parallel"
)

// MapReduce formats items in parallel and reduces the results by pairwise
// whole-string concatenation.
//
// The index range is split into Batches contiguous ranges, run as a
// fork-join tree. Inside a batch, items are formatted and folded left to
// right starting from "". Sibling batches are then joined as left+right,
// so the result is in input order regardless of which goroutine finishes
// first.
//
// Every join copies both operands, so this is slower than Fold and Collect.
type MapReduce struct {
	// Batches is the number of ranges to split the input into.
	// Zero means runtime.GOMAXPROCS(0). Capped at len(items).
	Batches int
}

// ViaMapReduce combines items with a default MapReduce.
func ViaMapReduce(items []string) string {
	return MapReduce{}.Combine(items)
}

// Combine implements Combiner.
func (m MapReduce) Combine(items []string) string {
	if len(items) == 0 {
		return ""
	}

	n := m.Batches
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > len(items) {
		n = len(items)
	}

	result := parallel.RangeReduce(0, len(items), n,
		func(low, high int) interface{} {
			acc := ""
			for _, it := range items[low:high] {
				acc = concat(acc, Wrap(it))
			}
			return acc
		},
		func(x, y interface{}) interface{} {
			return concat(x.(string), y.(string))
		},
	)
	return result.(string)
}

// concat returns a new string holding a followed by b.
func concat(a, b string) string {
	return a + b
}
