package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the records of a collection, newest first" }
func (*listCmd) Usage() string {
	return `tally list <kind>

  Lists the records of a collection (expenses, assets, or liabilities),
  sorted newest first.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKindArg(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.RecordsMarkdown(kind, store.Sorted(kind), formatter()))
	return subcommands.ExitSuccess
}
