package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a CSV file into a collection" }
func (*importCmd) Usage() string {
	return `tally import <kind> <file>

  Reads a CSV file and appends its rows to the collection, each with a
  fresh id. Imports never replace or deduplicate existing records.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKindArg(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: missing <file> argument")
		return subcommands.ExitUsageError
	}

	// The file read is a single-shot asynchronous operation: it completes or
	// fails exactly once, and there is no cancellation once started.
	res := <-tally.ReadFileAsync(f.Arg(1))
	if res.Err != nil {
		fmt.Fprintln(os.Stderr, "Import failed:", res.Err)
		return subcommands.ExitFailure
	}

	recs, err := tally.ImportRecords(kind, bytes.NewReader(res.Data))
	if err != nil {
		// no partial import: nothing has been applied to the store yet
		fmt.Fprintln(os.Stderr, "Import failed:", err)
		return subcommands.ExitFailure
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Merge(recs); err != nil {
		fmt.Fprintln(os.Stderr, "Import failed:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Import successful: %d records added to %s\n", len(recs), kind)
	return subcommands.ExitSuccess
}
