package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/oakfin/tradecal"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	output string
	path   string
	append bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import raw records into the canonical ledger file" }
func (*importCmd) Usage() string {
	return `tcal import [-o <ledger>] [-path <jsonpath>] [-a] [file]

  Reads raw records from the given file (or stdin), validates and
  normalizes them (a missing or unrecognized action defaults to "buy"),
  and writes the canonical, date-sorted JSONL ledger. With -path, the
  record array is first located inside a wrapper document, e.g.
  '$.trades' for broker exports that nest the rows.

Usage Examples:
# Import a pasted JSON array from the clipboard.
$ pbpaste | tcal import

# Import a nested broker export into a named ledger.
$ tcal import -path '$.trades' -o 2024.jsonl export.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Ledger file to write (defaults to -ledger-file).")
	f.StringVar(&c.path, "path", "", "JSONPath expression locating the record array in a wrapper document.")
	f.BoolVar(&c.append, "a", false, "Append to the ledger file instead of replacing it.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := io.Reader(os.Stdin)
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one input file is expected.")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	var records []tradecal.Record
	var err error
	if c.path != "" {
		records, err = tradecal.ExtractRecords(in, c.path)
	} else {
		records, err = tradecal.DecodeRecords(in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing records: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = *ledgerFile
	}

	ledger := tradecal.NewLedger(records...)
	if c.append {
		if f, err := os.Open(output); err == nil {
			existing, derr := tradecal.DecodeLedger(f)
			f.Close()
			if derr != nil {
				fmt.Fprintf(os.Stderr, "Error reading ledger %q: %v\n", output, derr)
				return subcommands.ExitFailure
			}
			existing.Append(ledger.Records()...)
			ledger = existing
		}
	}

	if err := writeLedger(output, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully imported %d records to %s\n", len(records), output)
	return subcommands.ExitSuccess
}

// writeLedger replaces the ledger file with the canonical encoding.
func writeLedger(filename string, ledger *tradecal.Ledger) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", filename, err)
	}
	if err := tradecal.EncodeRecords(f, ledger.Records()); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode ledger file %q: %w", filename, err)
	}
	return f.Close()
}
