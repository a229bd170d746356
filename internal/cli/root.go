// Package cli implements the cobra-based CLI commands for atmospec.
//
// Each subcommand (cards, spectrum, irradiance) is defined in its own
// file within this package. This file defines the root command that
// serves as the parent for all subcommands and handles global flags and
// error-to-exit-code translation.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aoyama-geo/atmospec/internal/card"
	"github.com/aoyama-geo/atmospec/internal/model"
	"github.com/aoyama-geo/atmospec/internal/params"
	"github.com/aoyama-geo/atmospec/internal/smarts"
)

// Global flag variables shared across all subcommands. These are bound to
// cobra persistent flags on the root command, which makes them available
// to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When false (default), output uses human-readable text format.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// Version, Commit and Date are set at build time via ldflags. They are
// injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by
// subcommands (cards, spectrum, irradiance).
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atmospec",
		Short: "Run the SMARTS atmospheric radiative-transfer solver",
		Long: `atmospec translates a semantically named atmospheric scene description
(location, time, composition, aerosol optics, spectral range) into the
SMARTS solver's positional card-deck input, runs the solver in an isolated
working directory, and returns its spectral irradiance output as structured
tabular data.

Parameters come from a JSONC or YAML file, an optional pollution preset,
and command-line overrides, merged over physically sensible defaults.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// (cards.go, spectrum.go, irradiance.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewCardsCommand())
	rootCmd.AddCommand(NewSpectrumCommand())
	rootCmd.AddCommand(NewIrradianceCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// Domain errors from the solver adapter are first classified onto exit
// codes, then printed in the selected format. Batch drivers rely on the
// distinct codes — in particular ExitSunDown, which marks a timestamp to
// skip rather than a failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		cliErr := classify(err)
		printError(cliErr.Message, cliErr.Err)
		os.Exit(int(cliErr.Code))
	}
}

// classify maps a domain error onto a CLIError carrying the matching
// process exit code. The SunDownError check precedes SolverError because
// a SunDownError unwraps to its underlying SolverError.
func classify(err error) *model.CLIError {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var (
		enumErr     *params.EnumValueError
		modeErr     *card.ModeError
		missingErr  *card.MissingCodesError
		notFound    *smarts.NotFoundError
		sunDown     *smarts.SunDownError
		solverErr   *smarts.SolverError
		execErr     *smarts.ExecError
		noOutputErr *smarts.MissingOutputError
	)
	switch {
	case errors.As(err, &enumErr), errors.As(err, &modeErr), errors.As(err, &missingErr):
		return model.WrapCLIError(model.ExitBadParameters, "invalid parameters", err)
	case errors.As(err, &notFound):
		return model.WrapCLIError(model.ExitSolverNotFound, "solver executable not found", err)
	case errors.As(err, &sunDown):
		return model.WrapCLIError(model.ExitSunDown, "sun below horizon", err)
	case errors.As(err, &solverErr), errors.As(err, &execErr):
		return model.WrapCLIError(model.ExitSolverFailed, "solver run failed", err)
	case errors.As(err, &noOutputErr):
		return model.WrapCLIError(model.ExitMissingOutput, "solver output missing", err)
	}
	return model.WrapCLIError(model.ExitGeneralError, err.Error(), nil)
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]any{
			"error": map[string]any{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]any); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. It is used throughout the CLI for debug/trace output.
func VerboseLog(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
