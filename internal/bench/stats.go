package bench

import (
	"math"
	"slices"
	"time"
)

// Stats summarizes a set of timing samples.
type Stats struct {
	N      int
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
	P95    time.Duration
	StdDev time.Duration
}

// Summarize computes Stats for samples. The input is not modified.
// An empty input yields the zero Stats.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	mean := float64(total) / float64(len(sorted))

	var sq float64
	for _, d := range sorted {
		diff := float64(d) - mean
		sq += diff * diff
	}
	stddev := 0.0
	if len(sorted) > 1 {
		stddev = math.Sqrt(sq / float64(len(sorted)-1))
	}

	return Stats{
		N:      len(sorted),
		Total:  total,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   time.Duration(mean),
		Median: percentile(sorted, 0.5),
		P95:    percentile(sorted, 0.95),
		StdDev: time.Duration(stddev),
	}
}

// percentile returns the p-quantile of sorted using linear interpolation
// between the closest ranks.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[hi]-sorted[lo]))
}
