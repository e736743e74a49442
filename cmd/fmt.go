package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger in canonical form"
}
func (*fmtCmd) Usage() string {
	return `cashbuddy fmt

  Loads the ledger, validating every expense as if it had been typed, and
  writes it back in canonical form. A missing ledger is created empty.

Usage Examples:
$ cashbuddy fmt
$ cashbuddy -backend sqlite -data expenses.db fmt
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, status := openApp()
	if app == nil {
		return status
	}
	defer app.Close()
	return c.run(ctx, app)
}

func (c *fmtCmd) run(ctx context.Context, app *App) subcommands.ExitStatus {
	ledger, err := app.Store.Load(ctx)
	if err != nil {
		fmt.Fprintf(app.Err, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := app.Store.Save(ctx, ledger); err != nil {
		fmt.Fprintf(app.Err, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	app.Logger.Info().Int("expenses", ledger.Len()).Msg("ledger formatted")
	fmt.Fprintf(app.Err, "Formatted ledger with %d expense(s).\n", ledger.Len())
	return subcommands.ExitSuccess
}
