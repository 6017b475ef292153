// Package cmd implements the CLI application to browse a trading ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/oakfin/tradecal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&calendarCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&dayCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing records (JSONL format)")

// DecodeLedger decodes the app default ledger file. A missing file is
// not an error: browsing an empty ledger is a valid first run.
func DecodeLedger() (*tradecal.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, using an empty ledger instead")
		return tradecal.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := tradecal.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// printMarkdown renders markdown for the terminal. If the terminal
// renderer cannot be used the raw markdown is printed instead.
func printMarkdown(src string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, rerr := r.Render(src); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(src)
}
