// Package main is the entry point for the atmospec CLI.
//
// This binary wraps the SMARTS atmospheric radiative-transfer solver:
// it translates semantic scene parameters into the solver's card-deck
// input, orchestrates execution in an isolated working directory, and
// reports spectral or broadband irradiance. All functionality lives in
// the internal/cli package, which defines cobra commands.
package main

import (
	"github.com/aoyama-geo/atmospec/internal/cli"
)

// version, commit, and date are set at build time via ldflags. They
// provide binary identification for the --version flag output and
// default to development placeholders otherwise.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This
	// decouples the build system (ldflags) from the CLI framework,
	// keeping main.go minimal.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Create the root command with all subcommands registered, then
	// execute it. Execute handles error formatting and exit codes.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
