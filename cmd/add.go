package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/snarigra/palesignal"
	"github.com/snarigra/palesignal/date"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record the day's signals interactively" }
func (*addCmd) Usage() string {
	return `pale add [-d <date>]

  Prompts for each daily signal (sleep, focus, mood, work hours, social
  interaction) and stores the entry. If the day already has an entry, asks
  before replacing it.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date to record, in YYYY-MM-DD form.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	existing, err := store.EntryByDate(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	fmt.Fprintf(out, "\nAdding data for %s\n%s\n", on, strings.Repeat("=", 60))

	if existing != nil {
		fmt.Fprintf(out, "WARNING: Entry for %s already exists.\n", on)
		answer, err := prompt(in, out, "Overwrite? (y/n): ")
		if err != nil || strings.ToLower(answer) != "y" {
			fmt.Fprintln(out, "Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	entry, err := readEntry(in, out, on, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if existing != nil {
		err = store.ReplaceEntry(entry)
	} else {
		err = store.AddEntry(entry)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(out, "\nSaved entry for %s at %s\n", entry.Date, entry.Timestamp)
	return subcommands.ExitSuccess
}

// readEntry collects one entry from the reader, prompting on w. The social
// prompt repeats until a known category is given; the numeric fields are
// parsed once and left to validation.
func readEntry(in *bufio.Reader, w io.Writer, on date.Date, now time.Time) (palesignal.Entry, error) {
	e := palesignal.Entry{Date: on, Timestamp: date.Timestamp(now)}

	sleep, err := promptFloat(in, w, "Sleep hours (0-24): ")
	if err != nil {
		return e, err
	}
	e.SleepHours = sleep

	focus, err := promptInt(in, w, "Focus (1-10): ")
	if err != nil {
		return e, err
	}
	e.Focus = focus

	mood, err := promptInt(in, w, "Mood (1-10): ")
	if err != nil {
		return e, err
	}
	e.Mood = mood

	work, err := promptFloat(in, w, "Work hours (0-24): ")
	if err != nil {
		return e, err
	}
	e.WorkHours = work

	for {
		fmt.Fprintln(w, "Social interaction type:")
		fmt.Fprintln(w, "  none       - No social interaction")
		fmt.Fprintln(w, "  online     - Online/digital only (chat, video call)")
		fmt.Fprintln(w, "  casual     - Brief in-person (small talk, errands)")
		fmt.Fprintln(w, "  meaningful - Quality time with friends/family")
		fmt.Fprintln(w, "  deep       - Deep conversation or bonding")
		answer, err := prompt(in, w, "Choose (none/online/casual/meaningful/deep): ")
		if err != nil {
			return e, err
		}
		social, err := palesignal.ParseSocial(strings.ToLower(answer))
		if err != nil {
			fmt.Fprintf(w, "ERROR: %v\n\n", err)
			continue
		}
		e.Social = social
		break
	}

	return e, nil
}

func prompt(in *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptFloat(in *bufio.Reader, w io.Writer, label string) (float64, error) {
	answer, err := prompt(in, w, label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", answer)
	}
	return v, nil
}

func promptInt(in *bufio.Reader, w io.Writer, label string) (int, error) {
	answer, err := prompt(in, w, label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", answer)
	}
	return v, nil
}
