package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/etnz/cashbuddy"
	"github.com/etnz/cashbuddy/renderer"
	"github.com/rs/zerolog"
)

// Session executes command lines against a loaded ledger and saves it after
// every change.
type Session struct {
	ledger *cashbuddy.Ledger
	store  cashbuddy.Store
	logger zerolog.Logger
}

// Ledger returns the ledger of the session.
func (s *Session) Ledger() *cashbuddy.Ledger { return s.ledger }

// Execute parses and executes one line. A failing line leaves the ledger
// untouched. When saving fails the result is returned along with the error.
func (s *Session) Execute(ctx context.Context, line string) (cashbuddy.Result, error) {
	cmd, err := cashbuddy.ParseCommand(line)
	if err != nil {
		s.logger.Debug().Err(err).Str("line", line).Msg("invalid command")
		return nil, err
	}
	log := s.logger.With().Str("command", cmd.Name()).Logger()

	res, err := cmd.Execute(s.ledger)
	if err != nil {
		log.Debug().Err(err).Msg("command failed")
		return nil, err
	}

	if res.Modified() {
		if err := s.store.Save(ctx, s.ledger); err != nil {
			log.Error().Err(err).Msg("could not save ledger")
			return res, fmt.Errorf("could not save ledger: %w", err)
		}
	}
	log.Info().Bool("modified", res.Modified()).Int("expenses", s.ledger.Len()).Msg("command executed")
	return res, nil
}

const welcome = `# cashbuddy

Track your expenses against a budget. Type ` + "`help`" + ` to list the commands and ` + "`bye`" + ` to leave.
`

// Interact runs lines read from in until bye or the end of input. Results
// and failures are written to out; a failure never stops the loop. When
// interactive is set a banner and a prompt are printed.
func (s *Session) Interact(ctx context.Context, in io.Reader, out io.Writer, opts renderer.Options, interactive, pretty bool) error {
	if interactive {
		printMarkdown(out, welcome, pretty)
	}
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := s.Execute(ctx, scanner.Text())
		if res != nil {
			printMarkdown(out, renderer.Render(res, opts), pretty)
		}
		if err != nil {
			printMarkdown(out, renderer.RenderError(err), pretty)
		}
		if res != nil && res.Exit() {
			return nil
		}
		if !pretty {
			fmt.Fprintln(out)
		}
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
