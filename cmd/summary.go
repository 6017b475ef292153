package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakfin/tradecal/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio trading summary" }
func (*summaryCmd) Usage() string {
	return `tcal summary

  Displays the portfolio-level statistics: invested capital, realized
  profit, wins, losses and win rate over the whole ledger.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report := ledger.Report()
	printMarkdown(renderer.SummaryMarkdown(&report.Summary))
	return subcommands.ExitSuccess
}
