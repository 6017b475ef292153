package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakfin/tradecal"
	"github.com/oakfin/tradecal/renderer"
)

// dayCmd holds the flags for the 'day' subcommand.
type dayCmd struct {
	date string
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "display the completed trades of a single day" }
func (*dayCmd) Usage() string {
	return `tcal day [-d <date>]

  Displays the trades completed (sold) on the given day, with their
  realized profit (defaults to today).
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the day to display.")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tradecal.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	bucket := tradecal.DailyBucket{Date: on}
	for _, day := range ledger.Report().Days {
		if day.Date == on {
			bucket = day
			break
		}
	}
	printMarkdown(renderer.DayMarkdown(bucket))
	return subcommands.ExitSuccess
}
