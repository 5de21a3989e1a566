package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/tally/cmd"
)

func main() {
	// Shell completion: exits early when invoked by the shell.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	kinds := predict.Set{"expenses", "assets", "liabilities"}
	tally := &complete.Command{
		Flags: map[string]complete.Predictor{
			"dir":      predict.Dirs("*"),
			"backend":  predict.Set{"file", "sqlite"},
			"currency": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"expense":   {Flags: map[string]complete.Predictor{"date": predict.Nothing, "category": predict.Nothing, "amount": predict.Nothing, "note": predict.Nothing}},
			"asset":     {Flags: map[string]complete.Predictor{"name": predict.Nothing, "type": predict.Nothing, "value": predict.Nothing}},
			"liability": {Flags: map[string]complete.Predictor{"name": predict.Nothing, "type": predict.Nothing, "amount": predict.Nothing}},
			"list":      {Args: kinds},
			"edit":      {Args: kinds},
			"rm":        {Args: kinds},
			"dashboard": {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"export":    {Args: kinds, Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"import":    {Args: predict.Or(kinds, predict.Files("*.csv"))},
			"wipe":      {},
			"query":     {},
			"topic":     {},
		},
	}
	tally.Complete("tally")
}
