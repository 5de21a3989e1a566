package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type wipeCmd struct {
	force bool
}

func (*wipeCmd) Name() string     { return "wipe" }
func (*wipeCmd) Synopsis() string { return "delete all data" }
func (*wipeCmd) Usage() string {
	return `tally wipe [-f]

  Resets all three collections to empty and removes the persisted slot.
  Asks for confirmation unless -f is given; this is irreversible.
`
}

func (p *wipeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Wipe without asking for confirmation")
}

func (p *wipeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force && !confirm("Wipe all data?") {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("All data wiped.")
	return subcommands.ExitSuccess
}
