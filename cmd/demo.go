package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/snarigra/palesignal"
)

// demoCmd holds the flags for the 'demo' subcommand.
type demoCmd struct {
	days int
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "display a summary over synthetic data" }
func (*demoCmd) Usage() string {
	return `pale demo [-days N]

  Generates N days of synthetic entries and displays the same summary that
  'pale summary' would. Nothing is written to the journal.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of synthetic days to generate.")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries := palesignal.DemoEntries(c.days)

	fmt.Println("\n(Synthetic demo data; your journal is untouched.)")
	fmt.Println()
	fmt.Println(palesignal.GenerateSummary(entries, c.days))
	return subcommands.ExitSuccess
}
