package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/etnz/tally"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query against the aggregate document" }
func (*queryCmd) Usage() string {
	return `tally query <jsonpath>

  Evaluates a JSONPath expression against the aggregate document and prints
  the result as JSON.

Usage Examples:
# All expense categories.
$ tally query '$.expenses[*].category'

# The value of every asset.
$ tally query '$.assets[*].value'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: missing <jsonpath> argument")
		return subcommands.ExitUsageError
	}

	store, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	out, err := evalQuery(store.Document(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

// evalQuery evaluates a JSONPath expression against the document and returns
// the result as indented JSON. The document is round-tripped through JSON
// first so the query sees exactly what is persisted, flattened extra fields
// included.
func evalQuery(doc *tally.Document, expr string) (string, error) {
	var buf bytes.Buffer
	if err := tally.EncodeDocument(&buf, doc); err != nil {
		return "", err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return "", err
	}

	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return "", fmt.Errorf("evaluating %q: %w", expr, err)
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
