// Package cmd implements the CLI application of the tally finance tracker.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

// Register registers all subcommands. A main package calls Register() and
// then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&expenseCmd{}, "records")
	c.Register(&assetCmd{}, "records")
	c.Register(&liabilityCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&rmCmd{}, "records")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&exportCmd{}, "import/export")
	c.Register(&importCmd{}, "import/export")

	c.Register(&wipeCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
}

// slotName is the name of the persisted slot holding the aggregate document,
// kept identical to the storage key of the original web tracker so sqlite
// databases remain recognizable.
const slotName = "local_finance_v1"

// as a CLI application the lifecycle is very short lived, so flag globals
// are fine here.
var (
	dirFlag      = flag.String("dir", "", "Data directory (default: current directory, or config)")
	backendFlag  = flag.String("backend", "", "Storage backend: file or sqlite (default: file, or config)")
	currencyFlag = flag.String("currency", "", "ISO currency code for display (default: INR, or config)")
)

// openStore opens the store on the configured slot backend. The returned
// close function releases backend resources and must always be called.
func openStore() (*tally.Store, func(), error) {
	cfg := loadConfig()

	switch resolve(*backendFlag, cfg.Backend, "file") {
	case "sqlite":
		slot, err := tally.OpenSQLiteSlot(filepath.Join(dataDir(cfg), "tally.db"), slotName)
		if err != nil {
			return nil, nil, err
		}
		return tally.Open(slot), func() { slot.Close() }, nil
	case "file":
		slot := tally.NewFileSlot(filepath.Join(dataDir(cfg), "tally.json"))
		return tally.Open(slot), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want file or sqlite)", resolve(*backendFlag, cfg.Backend, "file"))
	}
}

func dataDir(cfg config) string {
	return resolve(*dirFlag, cfg.Dir, ".")
}

// formatter returns the money formatter for the configured currency.
func formatter() tally.Formatter {
	return tally.NewFormatter(resolve(*currencyFlag, loadConfig().Currency, tally.DefaultCurrency))
}

// resolve picks the first non-empty value: flag, then config, then default.
func resolve(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseKindArg parses the positional <kind> argument of a subcommand.
func parseKindArg(f *flag.FlagSet) (tally.Kind, error) {
	if f.NArg() < 1 {
		return "", fmt.Errorf("missing <kind> argument (expenses, assets, or liabilities)")
	}
	return tally.ParseKind(f.Arg(0))
}

// confirm asks the user a yes/no question on the terminal. Destructive
// operations are irreversible (there is no undo), so they go through here
// unless forced.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// printMarkdown renders markdown to the terminal through glamour, falling
// back to the raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
