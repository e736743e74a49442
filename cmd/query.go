package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cashbuddy"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the ledger" }
func (*queryCmd) Usage() string {
	return `cashbuddy query <jsonpath>

  Evaluates a JSONPath expression against the JSON view of the ledger and
  prints the result as JSON. The view is:

  {"budget":300,"total":12.5,"remaining":287.5,
   "expenses":[{"index":1,"amount":12.5,"description":"Lunch","category":"Food","marked":true}]}

Usage Examples:
$ cashbuddy query '$.remaining'
$ cashbuddy query '$.expenses[?(@.marked)].amount'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(f.Output(), "%s", c.Usage())
		return subcommands.ExitUsageError
	}
	app, status := openApp()
	if app == nil {
		return status
	}
	defer app.Close()
	return c.run(ctx, app, f.Arg(0))
}

func (c *queryCmd) run(ctx context.Context, app *App, path string) subcommands.ExitStatus {
	ledger, err := app.Store.Load(ctx)
	if err != nil {
		fmt.Fprintf(app.Err, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	val, err := Query(ledger, path)
	if err != nil {
		fmt.Fprintf(app.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		fmt.Fprintf(app.Err, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(app.Out, "%s\n", out)
	return subcommands.ExitSuccess
}

// Query evaluates a JSONPath expression against the JSON view of the ledger.
func Query(ledger *cashbuddy.Ledger, path string) (any, error) {
	data, err := json.Marshal(ledger.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("could not encode ledger: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger view: %w", err)
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return val, nil
}
