package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

type assetCmd struct {
	name  string
	typ   string
	value string
}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "record a new asset" }
func (*assetCmd) Usage() string {
	return `tally asset -name <name> -type <type> -value <value>

  Records an asset and persists it immediately.
`
}

func (p *assetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Asset name")
	f.StringVar(&p.typ, "type", "", "Asset type (free text)")
	f.StringVar(&p.value, "value", "", "Asset value")
}

func (p *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	rec, err := store.Add(tally.Asset{Name: p.name, Type: p.typ, Value: p.value})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added asset %s\n", rec.Id())
	return subcommands.ExitSuccess
}
