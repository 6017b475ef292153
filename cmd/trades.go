package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oakfin/tradecal/renderer"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	open bool
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list completed trades, or open positions" }
func (*tradesCmd) Usage() string {
	return `tcal trades [-open]

  Lists all completed trades in matching order. With -open, lists the
  buy records left unmatched instead; open positions carry no realized
  profit and never count toward the statistics.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.open, "open", false, "List open positions instead of completed trades.")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report := ledger.Report()
	if c.open {
		printMarkdown(renderer.OpenPositionsMarkdown(report.Open))
	} else {
		printMarkdown(renderer.TradesMarkdown(report.Trades))
	}
	return subcommands.ExitSuccess
}
