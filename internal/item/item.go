// Package item generates the random input strings fed to the combiners.
//
// Items are fixed-length strings drawn uniformly from the 62-symbol
// alphanumeric set. Two sources are offered:
//   - RandomString / Generate: math/rand/v2 top-level functions, which use
//     per-thread runtime state and need no locking
//   - Generator: an explicit *rand.Rand, for callers that want their own
//     (or a seeded, reproducible) source
package item

import "math/rand/v2"

// Alphanumeric is the character set items are drawn from.
const Alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DefaultLength is the item length used by the benchmark driver.
const DefaultLength = 8

// RandomString returns a string of exactly length alphanumeric characters.
// A length of zero or less yields "".
func RandomString(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphanumeric[rand.IntN(len(Alphanumeric))]
	}
	return string(b)
}

// Generate returns count items of the given length.
func Generate(count, length int) []string {
	if count < 0 {
		count = 0
	}
	items := make([]string, count)
	for i := range items {
		items[i] = RandomString(length)
	}
	return items
}
