// Package combine concatenates a collection of strings into one formatted
// output, several different ways, for benchmarking.
//
// Every combiner wraps each item as "<p>" + item + "</p>\n" and joins the
// wrapped items in input order. They differ only in how they get there:
//   - Fold: one growing buffer, no per-item strings
//   - Collect: format every item into its own string, then join
//   - MapReduce: parallel fork-join map with ordered pairwise concatenation
//   - Pool: fixed worker pool formatting chunks, lock-free fan-in
//   - Stream: channel pipeline with an order-preserving concurrent map
//
// All combiners return byte-identical output for the same input, and all
// are safe to call concurrently on the same (read-only) items.
package combine

import "strings"

const (
	openTag  = "<p>"
	closeTag = "</p>\n"

	// wrapOverhead is the number of bytes Wrap adds to each item.
	wrapOverhead = len(openTag) + len(closeTag)
)

// Combiner turns an ordered sequence of strings into one output string.
type Combiner interface {
	// Combine returns the wrapped items concatenated in input order.
	// An empty input yields "".
	Combine(items []string) string
}

// Func adapts a plain function to the Combiner interface.
type Func func(items []string) string

// Combine calls f(items).
func (f Func) Combine(items []string) string {
	return f(items)
}

// Wrap formats a single item.
func Wrap(item string) string {
	return openTag + item + closeTag
}

// AppendWrapped writes the formatted item to b without building an
// intermediate string.
func AppendWrapped(b *strings.Builder, item string) {
	b.WriteString(openTag)
	b.WriteString(item)
	b.WriteString(closeTag)
}

// OutputSize returns the exact length of the combined output for items.
func OutputSize(items []string) int {
	n := len(items) * wrapOverhead
	for _, it := range items {
		n += len(it)
	}
	return n
}
