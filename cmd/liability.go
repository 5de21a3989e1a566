package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

type liabilityCmd struct {
	name   string
	typ    string
	amount string
}

func (*liabilityCmd) Name() string     { return "liability" }
func (*liabilityCmd) Synopsis() string { return "record a new liability" }
func (*liabilityCmd) Usage() string {
	return `tally liability -name <name> -type <type> -amount <amount>

  Records a liability and persists it immediately.
`
}

func (p *liabilityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Liability name")
	f.StringVar(&p.typ, "type", "", "Liability type (free text)")
	f.StringVar(&p.amount, "amount", "", "Liability amount")
}

func (p *liabilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	rec, err := store.Add(tally.Liability{Name: p.name, Type: p.typ, Amount: p.amount})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added liability %s\n", rec.Id())
	return subcommands.ExitSuccess
}
