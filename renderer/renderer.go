// Package renderer turns journal entries and analytics results into
// terminal output: markdown tables for entry listings and braille line
// charts for metric history. It holds all knowledge about terminal
// presentation so the core package does not have to.
package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snarigra/palesignal"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	legendStyle = lipgloss.NewStyle().Faint(true)
)

// EntriesTable renders entries as a markdown table, newest first.
func EntriesTable(entries []palesignal.Entry) string {
	var b strings.Builder
	b.WriteString("| Date | Sleep | Focus | Mood | Work | Social |\n")
	b.WriteString("|------|------:|------:|-----:|-----:|--------|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %.1fh | %d | %d | %.1fh | %s |\n",
			e.Date, e.SleepHours, e.Focus, e.Mood, e.WorkHours, e.Social)
	}
	return b.String()
}
