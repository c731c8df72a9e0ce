// Package cmd implements the CLI application to keep and analyze the
// daily-metrics journal.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/snarigra/palesignal"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "journal")
	c.Register(&logCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&summaryCmd{}, "analytics")
	c.Register(&plotCmd{}, "analytics")
	c.Register(&demoCmd{}, "analytics")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application the process is short lived, so shared configuration
// lives in package-level flags.
var dataFile = flag.String("data-file", "", "Path to the journal file (defaults to ~/.pale-signal/data.json)")

// openStore returns the store backed by the configured journal file.
func openStore() (*palesignal.Store, error) {
	file := *dataFile
	if file == "" {
		var err error
		file, err = palesignal.DefaultFile()
		if err != nil {
			return nil, err
		}
	}
	return palesignal.NewStore(file), nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
