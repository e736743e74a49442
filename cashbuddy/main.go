package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/cashbuddy/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Handle shell completion requests before anything else.
	cmd.Completion().Complete("cashbuddy")

	commander := subcommands.NewCommander(flag.CommandLine, "cashbuddy")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	args := flag.Args()
	switch {
	case len(args) == 0:
		flag.CommandLine.Parse([]string{"shell"})
	case isRegistered(commander, args[0]):
		flag.CommandLine.Parse(cmd.LedgerArgs(args))
	default:
		if ok, code := cmd.RunExtension(args[0], args[1:]); ok {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// isRegistered reports whether name is a subcommand of c.
func isRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
