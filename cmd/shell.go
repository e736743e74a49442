package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/term"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive expense shell (default)" }
func (*shellCmd) Usage() string {
	return `cashbuddy [shell]

  Reads ledger commands from the standard input, one per line, until 'bye' or
  the end of input. The ledger is saved after every change.

  Type 'help' in the shell for the list of commands.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, status := openApp()
	if app == nil {
		return status
	}
	defer app.Close()

	session, err := app.Open(ctx)
	if err != nil {
		fmt.Fprintf(app.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if err := session.Interact(ctx, os.Stdin, app.Out, app.Options, interactive, app.Pretty); err != nil {
		fmt.Fprintf(app.Err, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
