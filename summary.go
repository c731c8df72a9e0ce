package palesignal

import (
	"fmt"
	"math"
	"strings"
)

// rollingWindow is the window, in days, of the rolling averages shown in
// the summary report.
const rollingWindow = 7

// GenerateSummary assembles the deterministic multi-section text report
// for the given entries: averages with a social breakdown, 7-day rolling
// averages once at least a week of data exists, the top-3 metric
// correlations, and threshold flags. The requested number of days appears
// in the header next to the actual entry count. An empty input yields a
// fixed placeholder message.
func GenerateSummary(entries []Entry, days int) string {
	if len(entries) == 0 {
		return "No data available."
	}

	actual := len(entries)
	var lines []string

	lines = append(lines, fmt.Sprintf("Summary for last %d days (%d entries)", days, actual))
	lines = append(lines, strings.Repeat("=", 60))
	lines = append(lines, "")

	lines = append(lines, "AVERAGES:")
	lines = append(lines, fmt.Sprintf("  Sleep:     %.1f hours", Average(entries, SleepHours)))
	lines = append(lines, fmt.Sprintf("  Focus:     %.1f / 10", Average(entries, Focus)))
	lines = append(lines, fmt.Sprintf("  Mood:      %.1f / 10", Average(entries, Mood)))
	lines = append(lines, fmt.Sprintf("  Work:      %.1f hours", Average(entries, WorkHours)))

	counts := make(map[Social]int)
	for _, e := range entries {
		counts[e.Social]++
	}
	lines = append(lines, "  Social:")
	for _, s := range Socials {
		count := counts[s]
		if count == 0 {
			continue
		}
		pct := float64(count) / float64(actual) * 100
		lines = append(lines, fmt.Sprintf("    %-12s - %d/%d days (%.1f%%)", s, count, actual, pct))
	}
	lines = append(lines, "")

	if actual >= rollingWindow {
		lines = append(lines, "7-DAY ROLLING AVERAGES:")
		lines = append(lines, fmt.Sprintf("  Sleep:     %.1f hours", RollingAverage(entries, SleepHours, rollingWindow)))
		lines = append(lines, fmt.Sprintf("  Focus:     %.1f / 10", RollingAverage(entries, Focus, rollingWindow)))
		lines = append(lines, fmt.Sprintf("  Mood:      %.1f / 10", RollingAverage(entries, Mood, rollingWindow)))
		lines = append(lines, fmt.Sprintf("  Work:      %.1f hours", RollingAverage(entries, WorkHours, rollingWindow)))
		lines = append(lines, "")
	}

	if correlations := TopCorrelations(entries); len(correlations) > 0 {
		lines = append(lines, "TOP CORRELATIONS:")
		for _, c := range correlations[:min(3, len(correlations))] {
			lines = append(lines, fmt.Sprintf("  %s <-> %s: %+.2f (%s %s)",
				c.A, c.B, c.R, strength(c.R), direction(c.R)))
		}
		lines = append(lines, "")
	}

	if flags := IdentifyFlags(entries); len(flags) > 0 {
		lines = append(lines, "FLAGS:")
		for _, flag := range flags {
			lines = append(lines, "  "+flag)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// strength labels the magnitude of a correlation coefficient.
func strength(r float64) string {
	switch abs := math.Abs(r); {
	case abs > 0.7:
		return "strong"
	case abs > 0.4:
		return "moderate"
	default:
		return "weak"
	}
}

// direction labels the sign of a correlation coefficient.
func direction(r float64) string {
	if r > 0 {
		return "positive"
	}
	return "negative"
}
