package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/tally"
	"github.com/etnz/tally/renderer"
)

type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display totals and net worth" }
func (*dashboardCmd) Usage() string {
	return `tally dashboard [-d <date>]

  Displays total assets, total liabilities, the expenses of the calendar
  month containing the reference date, and net worth. The reference date
  defaults to today.
`
}

func (p *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date, YYYY-MM-DD (defaults to today)")
}

func (p *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := tally.Today()
	if p.date != "" {
		var err error
		on, err = tally.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	summary := tally.Summarize(store.Document(), on)
	printMarkdown(renderer.DashboardMarkdown(summary, formatter()))
	return subcommands.ExitSuccess
}
