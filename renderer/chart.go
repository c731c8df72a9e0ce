package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/NimbleMarkets/ntcharts/sparkline"

	"github.com/snarigra/palesignal"
)

// trendDataSet names the trailing-average overlay series on charts.
const trendDataSet = "7d avg"

// chartLabels maps every plottable metric, including the categorical
// social signal, to its axis label.
var chartLabels = map[string]string{
	"sleep_hours": "Sleep (hours)",
	"focus":       "Focus (1-10)",
	"mood":        "Mood (1-10)",
	"work_hours":  "Work (hours)",
	"social":      "Social (ordinal 0-4)",
}

// ChartMetrics lists the metric names accepted by Chart, in display order.
var ChartMetrics = []string{"sleep_hours", "focus", "mood", "work_hours", "social"}

// seriesValues extracts the plottable values for a metric name, social
// being mapped through its ordinal rank. Input order is preserved.
func seriesValues(entries []palesignal.Entry, metric string) ([]float64, error) {
	if metric == "social" {
		values := make([]float64, len(entries))
		for i, e := range entries {
			values[i] = float64(e.Social.Rank())
		}
		return values, nil
	}
	m, err := palesignal.ParseMetric(metric)
	if err != nil {
		return nil, fmt.Errorf("cannot plot %q: %w", metric, err)
	}
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = m.Value(e)
	}
	return values, nil
}

// trailingAverages returns, for each position of an oldest-first series,
// the mean of the up-to-window values ending there.
func trailingAverages(values []float64, window int) []float64 {
	avgs := make([]float64, len(values))
	for i := range values {
		start := max(0, i-window+1)
		var sum float64
		for _, v := range values[start : i+1] {
			sum += v
		}
		avgs[i] = sum / float64(i+1-start)
	}
	return avgs
}

// Chart renders a braille time-series chart of one metric, oldest to
// newest on the x-axis. With at least seven entries a 7-day trailing
// average series is overlaid. Entries are expected newest first, as the
// store returns them.
func Chart(entries []palesignal.Entry, metric string, width, height int) (string, error) {
	label, ok := chartLabels[metric]
	if !ok {
		return "", fmt.Errorf("cannot plot %q: valid metrics are %s", metric, strings.Join(ChartMetrics, ", "))
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no data to plot")
	}

	// Oldest first for the time axis.
	ordered := make([]palesignal.Entry, len(entries))
	for i, e := range entries {
		ordered[len(entries)-1-i] = e
	}
	values, err := seriesValues(ordered, metric)
	if err != nil {
		return "", err
	}

	chart := timeserieslinechart.New(width, height)
	for i, e := range ordered {
		chart.Push(timeserieslinechart.TimePoint{Time: dayTime(e.Date.Year(), e.Date.Month(), e.Date.Day()), Value: values[i]})
	}
	withTrend := len(ordered) >= 7
	if withTrend {
		for i, avg := range trailingAverages(values, 7) {
			e := ordered[i]
			chart.PushDataSet(trendDataSet, timeserieslinechart.TimePoint{Time: dayTime(e.Date.Year(), e.Date.Month(), e.Date.Day()), Value: avg})
		}
	}
	chart.DrawBrailleAll()

	var b strings.Builder
	b.WriteString(titleStyle.Render(label+" over time") + "\n")
	b.WriteString(chart.View())
	b.WriteString("\n")
	if withTrend {
		b.WriteString(legendStyle.Render("overlay: "+trendDataSet) + "\n")
	}
	return b.String(), nil
}

func dayTime(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Sparkline renders a compact single-line trend of a metric, oldest to
// newest. Entries are expected newest first.
func Sparkline(entries []palesignal.Entry, m palesignal.Metric, width int) string {
	if len(entries) == 0 {
		return ""
	}
	spark := sparkline.New(width, 1)
	for i := len(entries) - 1; i >= 0; i-- {
		spark.Push(m.Value(entries[i]))
	}
	spark.Draw()
	return spark.View()
}
