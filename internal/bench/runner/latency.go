package runner

import (
	"math"
	"slices"
	"time"
)

// LatencyStats summarises the per-evaluation latencies of one case on one
// engine, or of several cases when merged.
type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Total       time.Duration         `json:"total"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
	Raw         []time.Duration       `json:"-"`
}

var reportedPercentiles = []int{50, 90, 95, 99}

func ComputeLatencyStats(samples []time.Duration) LatencyStats {
	stats := LatencyStats{Percentiles: make(map[int]time.Duration, len(reportedPercentiles))}
	if len(samples) == 0 {
		return stats
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	for _, d := range sorted {
		stats.Total += d
	}

	n := len(sorted)
	stats.SampleCount = n
	stats.Raw = samples
	stats.Min = sorted[0]
	stats.Max = sorted[n-1]
	stats.Mean = stats.Total / time.Duration(n)
	stats.Median = percentile(sorted, 50)
	stats.Stddev = sampleStddev(sorted, stats.Mean)

	for _, p := range reportedPercentiles {
		stats.Percentiles[p] = percentile(sorted, p)
	}
	return stats
}

func sampleStddev(samples []time.Duration, mean time.Duration) time.Duration {
	if len(samples) < 2 {
		return 0
	}

	var ss float64
	for _, d := range samples {
		diff := float64(d - mean)
		ss += diff * diff
	}
	return time.Duration(math.Sqrt(ss / float64(len(samples)-1)))
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []time.Duration, p int) time.Duration {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := float64(p) / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[lo+1]-sorted[lo]))
}

// MergeLatencyStats recomputes statistics over the raw samples of all stats.
func MergeLatencyStats(stats ...LatencyStats) LatencyStats {
	var all []time.Duration
	for _, s := range stats {
		all = append(all, s.Raw...)
	}
	return ComputeLatencyStats(all)
}

// Throughput is evaluations per second over the measured time.
func (s LatencyStats) Throughput() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.SampleCount) / s.Total.Seconds()
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P90() time.Duration { return s.Percentiles[90] }
func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }

func (s LatencyStats) IsZero() bool {
	return s.SampleCount == 0
}
