package palesignal

import (
	"fmt"
	"math"
	"sort"
)

// This file holds the analytics engine: stateless, single-pass
// computations over an entry slice sorted newest first, as produced by the
// store. None of these functions can fail; every degenerate input has a
// defined result.

// Average returns the arithmetic mean of the metric across all entries,
// or 0 for an empty slice.
func Average(entries []Entry, m Metric) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += m.Value(e)
	}
	return sum / float64(len(entries))
}

// RollingAverage returns the mean of the metric over the most recent
// window entries. Since entries are newest first, that is the first window
// items of the slice; fewer entries than the window averages them all.
func RollingAverage(entries []Entry, m Metric, window int) float64 {
	if len(entries) == 0 {
		return 0
	}
	if window > 0 && window < len(entries) {
		entries = entries[:window]
	}
	return Average(entries, m)
}

// Correlation returns the Pearson product-moment correlation coefficient
// between two metrics, in [-1, 1]. It returns 0 for fewer than 2 entries,
// and 0 when either metric has zero variance across the sample (the
// coefficient is undefined there; 0 is the documented degenerate result).
func Correlation(entries []Entry, a, b Metric) float64 {
	if len(entries) < 2 {
		return 0
	}

	meanA := Average(entries, a)
	meanB := Average(entries, b)

	var num, sqA, sqB float64
	for _, e := range entries {
		da := a.Value(e) - meanA
		db := b.Value(e) - meanB
		num += da * db
		sqA += da * da
		sqB += db * db
	}

	den := math.Sqrt(sqA * sqB)
	if den == 0 {
		return 0
	}
	return num / den
}

// flagRule is one fixed threshold condition scanned by IdentifyFlags.
type flagRule struct {
	label string
	match func(Entry) bool
}

// flagRules are scanned in a fixed order: sleep, focus, mood, work.
var flagRules = []flagRule{
	{"Low sleep (<6h)", func(e Entry) bool { return e.SleepHours < 6 }},
	{"Low focus (<4)", func(e Entry) bool { return e.Focus < 4 }},
	{"Low mood (<4)", func(e Entry) bool { return e.Mood < 4 }},
	{"Long work days (>10h)", func(e Entry) bool { return e.WorkHours > 10 }},
}

// IdentifyFlags scans the entries for the four fixed threshold conditions
// and returns a warning string for each condition with a non-zero count,
// including the count and its share of all entries. The order of flags is
// fixed; an empty input yields no flags.
func IdentifyFlags(entries []Entry) []string {
	if len(entries) == 0 {
		return nil
	}

	var flags []string
	total := len(entries)
	for _, rule := range flagRules {
		count := 0
		for _, e := range entries {
			if rule.match(e) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		pct := float64(count) / float64(total) * 100
		flags = append(flags, fmt.Sprintf("WARNING: %s: %d/%d days (%.1f%%)", rule.label, count, total, pct))
	}
	return flags
}

// MetricCorrelation is the Pearson correlation between one unordered pair
// of metrics.
type MetricCorrelation struct {
	A, B Metric
	R    float64
}

// TopCorrelations computes the correlation of every unordered pair among
// the four numeric metrics (6 pairs) and returns them sorted by descending
// absolute value. Ties keep the pair enumeration order (sleep/focus,
// sleep/mood, sleep/work, focus/mood, focus/work, mood/work). Fewer than 2
// entries yields an empty result.
func TopCorrelations(entries []Entry) []MetricCorrelation {
	if len(entries) < 2 {
		return nil
	}

	var correlations []MetricCorrelation
	for i, a := range Metrics {
		for _, b := range Metrics[i+1:] {
			correlations = append(correlations, MetricCorrelation{
				A: a,
				B: b,
				R: Correlation(entries, a, b),
			})
		}
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return math.Abs(correlations[i].R) > math.Abs(correlations[j].R)
	})
	return correlations
}
