// internal/dataset/metrics.go
package dataset

import (
	"math"
	"slices"
)

// lengthStats describes a batch of prompt lengths in runes.
type lengthStats struct {
	mean, std float64
	p50, p95  float64
}

// describeLengths computes population mean and standard deviation plus
// interpolated percentiles. lengths is not modified.
func describeLengths(lengths []int) lengthStats {
	if len(lengths) == 0 {
		return lengthStats{}
	}
	sorted := slices.Clone(lengths)
	slices.Sort(sorted)

	var sum int
	for _, n := range sorted {
		sum += n
	}
	mean := float64(sum) / float64(len(sorted))

	var sq float64
	for _, n := range sorted {
		d := float64(n) - mean
		sq += d * d
	}

	return lengthStats{
		mean: mean,
		std:  math.Sqrt(sq / float64(len(sorted))),
		p50:  percentile(sorted, 0.50),
		p95:  percentile(sorted, 0.95),
	}
}

// percentile interpolates between the two closest ranks of sorted.
func percentile(sorted []int, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return float64(sorted[len(sorted)-1])
	}
	frac := pos - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}
