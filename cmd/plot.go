package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/snarigra/palesignal/renderer"
)

// plotCmd holds the flags for the 'plot' subcommand.
type plotCmd struct {
	width  int
	height int
}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "draw a metric's history as a terminal chart" }
func (*plotCmd) Usage() string {
	return `pale plot [-w <cols>] [-h <rows>] <metric>

  Draws the history of one metric (sleep_hours, focus, mood, work_hours,
  or social) as a braille line chart, oldest to newest, with a 7-day
  trailing average overlay once a week of data exists.
`
}

func (c *plotCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "w", 72, "Chart width in columns.")
	f.IntVar(&c.height, "h", 16, "Chart height in rows.")
}

func (c *plotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected one metric, valid metrics: %s\n", strings.Join(renderer.ChartMetrics, ", "))
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	entries, err := store.Entries(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	chart, err := renderer.Chart(entries, f.Arg(0), c.width, c.height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(chart)
	return subcommands.ExitSuccess
}
