package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the journal file in canonical form" }
func (*fmtCmd) Usage() string {
	return `pale fmt

  Reads the journal and writes it back in canonical form: entries sorted
  by date, most recent first, stable JSON formatting. Useful after hand
  edits.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	j, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(j); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s (%d entries)\n", store.File(), len(j.Entries))
	return subcommands.ExitSuccess
}
