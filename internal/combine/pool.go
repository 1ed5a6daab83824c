package combine

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/randomizedcoder/string-combine-benchmarks/internal/fanin"
)

// chunksPerWorker controls the default chunk size: enough chunks that a
// slow worker does not hold up the rest.
const chunksPerWorker = 4

// Pool formats contiguous chunks of the input on a fixed number of worker
// goroutines and hands each chunk to a single collector through a fan-in
// Sink. The collector places chunks by index and joins them in order.
type Pool struct {
	// Workers is the number of formatting goroutines.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is the number of items per chunk.
	// Zero picks a size giving each worker about four chunks.
	ChunkSize int

	// Sink selects the fan-in implementation. Empty means fanin.DefaultKind.
	Sink fanin.Kind
}

// ViaPool combines items with a default Pool.
func ViaPool(items []string) string {
	return Pool{}.Combine(items)
}

// Combine implements Combiner.
//
// Combine panics if the configured Sink kind is not supported; use
// fanin.ParseKind to validate user input first.
func (p Pool) Combine(items []string) string {
	if len(items) == 0 {
		return ""
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := p.ChunkSize
	if chunk <= 0 {
		chunk = (len(items) + workers*chunksPerWorker - 1) / (workers * chunksPerWorker)
	}
	parts := (len(items) + chunk - 1) / chunk
	if workers > parts {
		workers = parts
	}

	sink, err := fanin.New(p.Sink, workers, parts)
	if err != nil {
		panic(fmt.Sprintf("combine: %v", err))
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(producer int) {
			defer wg.Done()
			prod := sink.Producer(producer)
			for {
				idx := int(next.Add(1) - 1)
				if idx >= parts {
					return
				}
				low := idx * chunk
				high := min(low+chunk, len(items))

				var b strings.Builder
				b.Grow(OutputSize(items[low:high]))
				for _, it := range items[low:high] {
					AppendWrapped(&b, it)
				}
				prod.Send(fanin.Part{Index: idx, Text: b.String()})
			}
		}(w)
	}

	texts := fanin.Gather(sink, parts)
	wg.Wait()

	var out strings.Builder
	out.Grow(OutputSize(items))
	for _, t := range texts {
		out.WriteString(t)
	}
	return out.String()
}
