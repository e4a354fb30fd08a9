package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/settle/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	// Unknown subcommands fall through to scs-<name> extensions found in PATH.
	if args := flag.Args(); len(args) > 0 && !isRegistered(commander, args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isRegistered(commander *subcommands.Commander, name string) bool {
	known := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			known = true
		}
	})
	return known
}

// completion wires shell completion. It is a no-op unless the shell invokes
// the binary in completion mode (see posener/complete).
func completion() {
	book := predict.Files("*.jsonl")
	sheet := predict.Files("*")
	scs := &complete.Command{
		Flags: map[string]complete.Predictor{
			"book":     book,
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"roster": {},
			"add": {Flags: map[string]complete.Predictor{
				"d":    predict.Nothing,
				"p":    predict.Nothing,
				"a":    predict.Nothing,
				"s":    predict.Nothing,
				"date": predict.Nothing,
				"m":    predict.Nothing,
			}},
			"import":   {Args: sheet, Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"settle":   {Flags: map[string]complete.Predictor{"o": sheet}},
			"balances": {},
			"summary":  {},
			"tx":       {},
			"fmt":      {Flags: map[string]complete.Predictor{"o": sheet}},
			"topic":    {Args: predict.Set{"readme", "book", "netting", "spreadsheet", "*"}},
		},
	}
	scs.Complete("scs")
}
