package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/etnz/cashbuddy/config"
)

// Environment passed to extensions. They are the configuration variables, so
// an extension reads the same settings with config.FromEnv.
const (
	EnvData     = "CASHBUDDY_DATA"
	EnvBackend  = "CASHBUDDY_BACKEND"
	EnvCurrency = "CASHBUDDY_CURRENCY"
	EnvLogLevel = "CASHBUDDY_LOG_LEVEL"
)

// ExtensionEnv returns the environment of an extension run with cfg.
func ExtensionEnv(cfg *config.Config) []string {
	return append(os.Environ(),
		EnvData+"="+cfg.DataPath,
		EnvBackend+"="+cfg.Backend,
		EnvCurrency+"="+cfg.Currency,
		EnvLogLevel+"="+cfg.LogLevel,
	)
}

// RunExtension runs the cashbuddy-<subcommand> executable found on the PATH
// with the current configuration in its environment. It reports whether an
// extension was found, and its exit code.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "cashbuddy-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cfg, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = ExtensionEnv(cfg)

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return true, 0
	case errors.As(err, &exitErr) && exitErr.ExitCode() >= 0:
		return true, exitErr.ExitCode()
	default:
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
}
