// Command pale is a local-first journal for daily life signals: sleep,
// focus, mood, work hours, and social interaction.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/snarigra/palesignal/cmd"
	"github.com/snarigra/palesignal/renderer"
)

func main() {
	// Shell completion; only acts when invoked by the shell's
	// completion hook, otherwise returns immediately.
	completion().Complete("pale")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	days := map[string]complete.Predictor{"days": predict.Nothing}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"add":     {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"log":     {Flags: days},
			"fmt":     {},
			"summary": {Flags: days},
			"plot":    {Args: predict.Set(renderer.ChartMetrics)},
			"demo":    {Flags: days},
			"topic":   {Args: predict.Set{"tracking", "metrics", "storage", "*"}},
		},
	}
}
