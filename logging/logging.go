// Package logging builds the structured logger of cashbuddy.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level writing to file, or to a console
// writer on standard error when file is empty. An empty level disables
// logging. The returned closer releases the log file.
func New(level, file string) (zerolog.Logger, io.Closer, error) {
	lvl := zerolog.Disabled
	if level = strings.TrimSpace(level); level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	if file == "" {
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("could not open log file %q: %w", file, err)
	}
	return zerolog.New(f).Level(lvl).With().Timestamp().Logger(), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
