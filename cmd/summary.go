package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/snarigra/palesignal"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	days int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display summary statistics for recent days" }
func (*summaryCmd) Usage() string {
	return `pale summary [-days N]

  Displays averages, rolling averages, the strongest metric correlations,
  and threshold flags over the most recent N days.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of days to summarize.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if len(entries) > 0 && len(entries) < 3 {
		fmt.Fprintf(os.Stderr, "Note: only %d entries recorded so far; correlations need more data. Try 'pale demo' to see a full report on synthetic data.\n", len(entries))
	}

	fmt.Println()
	fmt.Println(palesignal.GenerateSummary(entries, c.days))
	return subcommands.ExitSuccess
}
