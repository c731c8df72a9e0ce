package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/snarigra/palesignal"
	"github.com/snarigra/palesignal/renderer"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	days int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list recent entries" }
func (*logCmd) Usage() string {
	return `pale log [-days N]

  Lists the most recent entries as a table, newest first, with a compact
  trend line per metric.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 14, "Number of days to list.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	entries, err := store.Entries(c.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(entries) == 0 {
		fmt.Println("No data available.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.EntriesTable(entries))

	fmt.Println("Trends (oldest to newest):")
	for _, m := range palesignal.Metrics {
		fmt.Printf("  %-12s %s\n", m, renderer.Sparkline(entries, m, 30))
	}
	return subcommands.ExitSuccess
}
