package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/cashbuddy/docs"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `cashbuddy topic [-list] [<topic>...]

  Shows the documentation of the given topics, or the overview without
  arguments. A command name shows the usage of that command; '*' shows every
  topic.

Usage Examples:
$ cashbuddy topic storage
$ cashbuddy topic add edit
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the available topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	if c.list {
		if err := listTopics(os.Stdout, pretty); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'cashbuddy topic -list' for the available topics.\n")
		return subcommands.ExitUsageError
	}
	printMarkdown(os.Stdout, doc, pretty)
	return subcommands.ExitSuccess
}

// listTopics prints the topics of the overview as a markdown list.
func listTopics(w io.Writer, pretty bool) error {
	topics, err := docs.Topics()
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, t := range topics {
		fmt.Fprintf(&b, "- `%s`: %s\n", t.Name, t.Summary)
	}
	printMarkdown(w, b.String(), pretty)
	return nil
}
