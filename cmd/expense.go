package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

type expenseCmd struct {
	date     string
	category string
	amount   string
	note     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a new expense" }
func (*expenseCmd) Usage() string {
	return `tally expense -category <category> -amount <amount> [-date <date>] [-note <note>]

  Records an expense and persists it immediately.
`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Expense date, YYYY-MM-DD (defaults to today)")
	f.StringVar(&p.category, "category", "", "Expense category (free text)")
	f.StringVar(&p.amount, "amount", "", "Expense amount")
	f.StringVar(&p.note, "note", "", "Optional note")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.date == "" {
		p.date = tally.Today().String()
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	rec, err := store.Add(tally.Expense{
		Date:     p.date,
		Category: p.category,
		Amount:   p.amount,
		Note:     p.note,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added expense %s\n", rec.Id())
	return subcommands.ExitSuccess
}
