package item

import "math/rand/v2"

// Generator draws items from its own random source.
//
// A Generator is NOT safe for concurrent use; give each goroutine its own.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded creates a Generator with a deterministic PCG source.
// The same seed always produces the same item sequence.
func NewSeeded(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomString returns a string of exactly length alphanumeric characters.
func (g *Generator) RandomString(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphanumeric[g.rng.IntN(len(Alphanumeric))]
	}
	return string(b)
}

// Generate returns count items of the given length.
func (g *Generator) Generate(count, length int) []string {
	if count < 0 {
		count = 0
	}
	items := make([]string, count)
	for i := range items {
		items[i] = g.RandomString(length)
	}
	return items
}
