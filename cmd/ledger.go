package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/cashbuddy"
	"github.com/etnz/cashbuddy/docs"
	"github.com/etnz/cashbuddy/renderer"
	"github.com/google/subcommands"
)

// ledgerCmd runs a single ledger command from the command line, for instance
//
//	cashbuddy add a/12.50 desc/Lunch cat/Food
type ledgerCmd struct {
	name     string
	synopsis string
}

// ledgerCommands returns a subcommand for every ledger command that makes
// sense outside the shell.
func ledgerCommands() []*ledgerCmd {
	return []*ledgerCmd{
		{cashbuddy.CmdAdd, "add an expense"},
		{cashbuddy.CmdEdit, "change some fields of an expense"},
		{cashbuddy.CmdDelete, "delete an expense"},
		{cashbuddy.CmdMark, "mark an expense as paid"},
		{cashbuddy.CmdUnmark, "clear the paid mark of an expense"},
		{cashbuddy.CmdSetBudget, "set the budget"},
		{cashbuddy.CmdList, "show the summary and every expense"},
		{cashbuddy.CmdFind, "find expenses by category or description"},
	}
}

// LedgerArgs returns the command line args with a "--" after a ledger
// command name, so that its arguments are never read as flags: the index of
// "delete -1" must reach the index check. Other command lines are returned
// unchanged.
func LedgerArgs(args []string) []string {
	if len(args) == 0 || (len(args) > 1 && args[1] == "--") {
		return args
	}
	for _, lc := range ledgerCommands() {
		if lc.name == args[0] {
			return append([]string{args[0], "--"}, args[1:]...)
		}
	}
	return args
}

func (c *ledgerCmd) Name() string     { return c.name }
func (c *ledgerCmd) Synopsis() string { return c.synopsis }
func (c *ledgerCmd) Usage() string {
	usage, err := docs.Usage(c.name)
	if err != nil {
		return c.name + "\n"
	}
	return usage
}

func (*ledgerCmd) SetFlags(f *flag.FlagSet) {}

func (c *ledgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, status := openApp()
	if app == nil {
		return status
	}
	defer app.Close()
	return c.run(ctx, app, f.Args())
}

func (c *ledgerCmd) run(ctx context.Context, app *App, args []string) subcommands.ExitStatus {
	session, err := app.Open(ctx)
	if err != nil {
		fmt.Fprintf(app.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res, err := session.Execute(ctx, c.name+" "+strings.Join(args, " "))
	if res != nil {
		printMarkdown(app.Out, renderer.Render(res, app.Options), app.Pretty)
	}
	if err != nil {
		printMarkdown(app.Err, renderer.RenderError(err), false)
		if errors.Is(err, cashbuddy.ErrMissingPrefix) || errors.Is(err, cashbuddy.ErrUnexpectedArguments) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
