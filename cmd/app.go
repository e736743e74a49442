// Package cmd implements the cashbuddy command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashbuddy"
	"github.com/etnz/cashbuddy/config"
	"github.com/etnz/cashbuddy/logging"
	"github.com/etnz/cashbuddy/renderer"
	"github.com/etnz/cashbuddy/sqlite"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "")

	for _, lc := range ledgerCommands() {
		c.Register(lc, "ledger")
	}

	c.Register(&fmtCmd{}, "storage")
	c.Register(&queryCmd{}, "storage")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Empty flags fall back to the configuration.

var dataPath = flag.String("data", "", "Path to the ledger file or database (default from CASHBUDDY_DATA)")
var backend = flag.String("backend", "", "Storage backend, jsonl or sqlite (default from CASHBUDDY_BACKEND)")
var currency = flag.String("currency", "", "ISO 4217 currency used to display amounts (default from CASHBUDDY_CURRENCY)")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error or disabled (default from CASHBUDDY_LOG_LEVEL)")

// Settings returns the configuration with the global flags applied.
func Settings() (*config.Config, error) {
	cfg := config.Load()
	if *backend != "" {
		cfg.Backend = *backend
		if *dataPath == "" && os.Getenv("CASHBUDDY_DATA") == "" {
			cfg.DataPath = config.DefaultDataPath(cfg.Backend)
		}
	}
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App bundles what every subcommand needs.
type App struct {
	Store   cashbuddy.Store
	Logger  zerolog.Logger
	Options renderer.Options
	Out     io.Writer
	Err     io.Writer
	// Pretty renders markdown for a terminal instead of printing it raw.
	Pretty bool

	closers []io.Closer
}

// NewApp opens the configured store and logger.
func NewApp(cfg *config.Config) (*App, error) {
	logger, logCloser, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app := &App{
		Logger:  logger,
		Options: renderer.Options{Currency: cfg.Currency, BarWidth: cfg.BarWidth},
		Out:     os.Stdout,
		Err:     os.Stderr,
		Pretty:  term.IsTerminal(int(os.Stdout.Fd())),
		closers: []io.Closer{logCloser},
	}

	switch cfg.Backend {
	case "sqlite":
		store, err := sqlite.Open(cfg.DataPath)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("could not open database %q: %w", cfg.DataPath, err)
		}
		app.Store = store
		app.closers = append(app.closers, store)
	default:
		app.Store = cashbuddy.NewFileStore(cfg.DataPath)
	}
	logger.Debug().Str("backend", cfg.Backend).Str("data", cfg.DataPath).Msg("store opened")
	return app, nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// openApp is the common prologue of the subcommands.
func openApp() (*App, subcommands.ExitStatus) {
	cfg, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return app, subcommands.ExitSuccess
}

// Open loads the ledger into a new session.
func (a *App) Open(ctx context.Context) (*Session, error) {
	ledger, err := a.Store.Load(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("could not load ledger")
		return nil, err
	}
	a.Logger.Debug().Int("expenses", ledger.Len()).Msg("ledger loaded")
	return &Session{ledger: ledger, store: a.Store, logger: a.Logger}, nil
}

// printMarkdown writes md to w, styled for the terminal when pretty is set.
func printMarkdown(w io.Writer, md string, pretty bool) {
	if pretty {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				md = out
			}
		}
	}
	fmt.Fprint(w, md)
}
