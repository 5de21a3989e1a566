package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a collection to a CSV file" }
func (*exportCmd) Usage() string {
	return `tally export <kind> [-o <file>]

  Writes the collection to a CSV file, {kind}_{date}.csv by default.
  An empty collection exports nothing.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file (defaults to {kind}_{date}.csv)")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	filename := p.output
	if filename == "" {
		filename = tally.ExportFilename(kind, tally.Today())
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := tally.ExportRecords(file, store.Document().Records(kind)); err != nil {
		file.Close()
		os.Remove(filename) // don't leave an empty file behind
		if errors.Is(err, tally.ErrNothingToExport) {
			fmt.Fprintf(os.Stderr, "No data to export in %s.\n", kind)
			return subcommands.ExitSuccess
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %s to %s\n", kind, filename)
	return subcommands.ExitSuccess
}
