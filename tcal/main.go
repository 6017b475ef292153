package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/oakfin/tradecal/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests. It is a no-op in a
// normal run; under a shell completion request it replies and exits.
func completion() {
	dateFlags := map[string]complete.Predictor{
		"d": predict.Nothing,
	}
	tcal := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"import": {Flags: map[string]complete.Predictor{
				"o":    predict.Files("*.jsonl"),
				"path": predict.Nothing,
				"a":    predict.Nothing,
			}},
			"fmt": {},
			"calendar": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"n": predict.Nothing,
			}},
			"summary": {},
			"day":     {Flags: dateFlags},
			"trades": {Flags: map[string]complete.Predictor{
				"open": predict.Nothing,
			}},
			"topic":  {Args: predict.Something},
			"assist": {},
		},
	}
	tcal.Complete("tcal")
}
