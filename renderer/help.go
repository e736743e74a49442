package renderer

import (
	"errors"
	"strings"

	"github.com/etnz/cashbuddy"
	"github.com/etnz/cashbuddy/docs"
)

// help prints the usage of one command, or the synopsis of every command.
func (r *ledgerRenderer) help(topic string) {
	if topic != "" {
		usage, err := docs.Usage(topic)
		if err == nil {
			r.Printf("%s", usage)
			return
		}
		r.Printf("No help for %q.\n\n", topic)
	}
	r.Printf("## Commands\n\n")
	r.Printf("```\n")
	for _, c := range docs.Commands() {
		synopsis, _ := docs.Synopsis(c)
		for _, line := range synopsis {
			r.Printf("%s\n", line)
		}
	}
	r.Printf("```\n\n")
	r.Printf("Type `help COMMAND` for details and examples.\n")
}

// structural lists the failures answered with the usage of the failing command.
var structural = []error{
	cashbuddy.ErrMissingPrefix,
	cashbuddy.ErrEmptyAmount,
	cashbuddy.ErrEmptyDescription,
	cashbuddy.ErrEmptyCategory,
	cashbuddy.ErrMissingIndex,
	cashbuddy.ErrInvalidIndex,
	cashbuddy.ErrMissingCriteria,
	cashbuddy.ErrTooManyCriteria,
	cashbuddy.ErrUnexpectedArguments,
}

// RenderError returns the markdown report of a failed command.
func RenderError(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n")

	var e *cashbuddy.Error
	if !errors.As(err, &e) {
		return b.String()
	}
	if errors.Is(err, cashbuddy.ErrUnknownCommand) {
		b.WriteString("\nType `help` to see the available commands.\n")
		return b.String()
	}
	if !isStructural(err) || e.Command == "" {
		return b.String()
	}
	synopsis, serr := docs.Synopsis(e.Command)
	if serr != nil {
		return b.String()
	}
	b.WriteString("\nUsage:\n\n```\n")
	for _, line := range synopsis {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}

func isStructural(err error) bool {
	for _, kind := range structural {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
