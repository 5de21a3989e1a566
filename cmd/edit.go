package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

type editCmd struct {
	id string

	// expense fields
	date     string
	category string
	note     string

	// asset and liability fields
	name string
	typ  string

	amount string
	value  string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a record wholesale" }
func (*editCmd) Usage() string {
	return `tally edit <kind> -id <id> [field flags]

  Replaces the record at the given id with the provided fields. The
  replacement is wholesale: fields left out become empty, only the id is
  preserved.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the record to replace")
	f.StringVar(&p.date, "date", "", "Expense date, YYYY-MM-DD")
	f.StringVar(&p.category, "category", "", "Expense category")
	f.StringVar(&p.note, "note", "", "Expense note")
	f.StringVar(&p.name, "name", "", "Asset or liability name")
	f.StringVar(&p.typ, "type", "", "Asset or liability type")
	f.StringVar(&p.amount, "amount", "", "Expense or liability amount")
	f.StringVar(&p.value, "value", "", "Asset value")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKindArg(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	var rec tally.Record
	switch kind {
	case tally.Expenses:
		rec = tally.Expense{Date: p.date, Category: p.category, Amount: p.amount, Note: p.note}
	case tally.Assets:
		rec = tally.Asset{Name: p.name, Type: p.typ, Value: p.value}
	case tally.Liabilities:
		rec = tally.Liability{Name: p.name, Type: p.typ, Amount: p.amount}
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Update(kind, p.id, rec); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s %s\n", kind, p.id)
	return subcommands.ExitSuccess
}
