package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/oakfin/tradecal"
	"github.com/oakfin/tradecal/renderer"
)

// calendarCmd holds the flags for the 'calendar' subcommand.
type calendarCmd struct {
	date   string
	months int
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the month calendar of realized trading results" }
func (*calendarCmd) Usage() string {
	return `tcal calendar [-d <date>] [-n <months>]

  Displays a month grid with the realized profit and trade count of each
  day, for the month of the given date (defaults to today).
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date inside the month to display. See 'tcal topic calendar' for supported date formats.")
	f.IntVar(&c.months, "n", 1, "Number of consecutive months to display, starting at the date's month.")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tradecal.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.months < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n must be at least 1.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report := ledger.Report()

	first := on.StartOfMonth()
	for i := range c.months {
		month := tradecal.NewDate(first.Year(), first.Month()+time.Month(i), 1)
		days := tradecal.ExpandMonth(report.Days, month.Year(), month.Month())
		printMarkdown(renderer.CalendarMarkdown(month.Year(), month.Month(), days))
	}
	return subcommands.ExitSuccess
}
