package combine

import "strings"

// ViaFold visits each item in order and appends it, wrapped, to a single
// growing buffer.
//
// This is the fastest approach: each item is formatted straight into the
// output and nothing per-item outlives the loop. It cannot be parallelized.
func ViaFold(items []string) string {
	var b strings.Builder
	b.Grow(OutputSize(items))
	for _, it := range items {
		AppendWrapped(&b, it)
	}
	return b.String()
}

// ViaCollect formats every item into its own string, then concatenates
// them in order.
//
// Each intermediate value can be inspected on its own, at the cost of
// holding all of them in memory until the final join.
func ViaCollect(items []string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = Wrap(it)
	}
	return strings.Join(parts, "")
}

// Fold is the Combiner form of ViaFold.
type Fold struct{}

// Combine implements Combiner.
func (Fold) Combine(items []string) string { return ViaFold(items) }

// Collect is the Combiner form of ViaCollect.
type Collect struct{}

// Combine implements Combiner.
func (Collect) Combine(items []string) string { return ViaCollect(items) }
