package combine_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/string-combine-benchmarks/internal/combine"
	"github.com/randomizedcoder/string-combine-benchmarks/internal/item"
)

// TestCombine_Race calls every combiner from many goroutines on the same
// shared input.
// Run with: go test -race ./internal/combine
func TestCombine_Race(t *testing.T) {
	items := item.Generate(2000, item.DefaultLength)
	want := combine.ViaFold(items)

	var wg sync.WaitGroup
	for _, c := range combine.All(combine.Options{Workers: 4}) {
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(c combine.Named) {
				defer wg.Done()
				if got := c.Combiner.Combine(items); got != want {
					t.Errorf("%s: concurrent call produced different output", c.Name)
				}
			}(c)
		}
	}
	wg.Wait()
}
