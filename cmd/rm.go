package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id    string
	force bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record" }
func (*rmCmd) Usage() string {
	return `tally rm <kind> -id <id> [-f]

  Deletes the record with the given id. Asks for confirmation unless -f is
  given; the deletion is irreversible.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the record to delete")
	f.BoolVar(&p.force, "f", false, "Delete without asking for confirmation")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKindArg(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	if !p.force && !confirm("Delete this entry?") {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Delete(kind, p.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s %s\n", kind, p.id)
	return subcommands.ExitSuccess
}
