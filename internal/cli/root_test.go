// Package cli — root_test.go contains unit tests for the error-to-exit-code
// classification and for the cards command, which runs entirely in-process.
//
// These tests verify command wiring and error mapping without requiring the
// solver binary, a Docker daemon, or any external dependencies.
package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoyama-geo/atmospec/internal/card"
	"github.com/aoyama-geo/atmospec/internal/model"
	"github.com/aoyama-geo/atmospec/internal/params"
	"github.com/aoyama-geo/atmospec/internal/smarts"
)

// TestClassify verifies that each domain error family maps onto its
// documented process exit code.
func TestClassify(t *testing.T) {
	sunDown := &smarts.SunDownError{
		Cause: &smarts.SolverError{Dir: "/tmp/x", Line: "** ERROR #7 *** sun below horizon"},
	}

	tests := []struct {
		name string
		err  error
		want model.ExitCode
	}{
		{
			name: "enumeration violation",
			err:  &params.EnumValueError{Param: "season", Value: "monsoon", Valid: []string{"summer", "winter"}},
			want: model.ExitBadParameters,
		},
		{
			name: "mode selector violation",
			err:  &card.ModeError{Code: "IATMOS", Value: 2, Reason: "must be 0 or 1"},
			want: model.ExitBadParameters,
		},
		{
			name: "missing short-codes",
			err:  &card.MissingCodesError{Codes: []string{"WLMN"}},
			want: model.ExitBadParameters,
		},
		{
			name: "solver not installed",
			err:  &smarts.NotFoundError{Code: 127, Stderr: "sh: smarts.py: not found"},
			want: model.ExitSolverNotFound,
		},
		{
			name: "sun below horizon",
			err:  sunDown,
			want: model.ExitSunDown,
		},
		{
			name: "logged solver error",
			err:  &smarts.SolverError{Dir: "/tmp/x", Line: "** ERROR #2 ***"},
			want: model.ExitSolverFailed,
		},
		{
			name: "non-zero solver exit",
			err:  &smarts.ExecError{Dir: "/tmp/x", Code: 42, Stderr: "crash"},
			want: model.ExitSolverFailed,
		},
		{
			name: "missing output file",
			err:  &smarts.MissingOutputError{Dir: "/tmp/x", Name: smarts.OutputFile},
			want: model.ExitMissingOutput,
		},
		{
			name: "already classified",
			err:  model.NewCLIError(model.ExitGeneralError, "no resource root configured"),
			want: model.ExitGeneralError,
		},
		{
			name: "unrecognized error",
			err:  errors.New("something else"),
			want: model.ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

// TestClassifySunDownBeforeSolver guards the classification order: a
// SunDownError also matches SolverError through its unwrap chain, so the
// more specific type must win.
func TestClassifySunDownBeforeSolver(t *testing.T) {
	err := &smarts.SunDownError{Cause: &smarts.SolverError{Line: "** ERROR #7 ***"}}

	var solverErr *smarts.SolverError
	require.ErrorAs(t, err, &solverErr, "precondition: sun-down unwraps to a solver error")

	assert.Equal(t, model.ExitSunDown, classify(err).Code)
}

// runCommand executes the root command with args and returns captured
// stdout and the execution error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCommand()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// TestCardsCommand verifies the dry-run command prints a complete deck
// from the defaults, including the fixed output selector cards.
func TestCardsCommand(t *testing.T) {
	out, err := runCommand(t, "cards")
	require.NoError(t, err)

	assert.Contains(t, out, "'atmospec_default_configuration'")
	assert.Contains(t, out, "2 3 4 5")
	assert.True(t, strings.HasSuffix(out, "\n\n"), "deck ends with a blank line")
}

// TestCardsCommandOverrides verifies flag overrides reach the deck.
func TestCardsCommandOverrides(t *testing.T) {
	out, err := runCommand(t, "cards", "--lat", "-33.9", "--time", "2021-12-21T04:30:00Z")
	require.NoError(t, err)

	assert.Contains(t, out, "-33.9")
	assert.Contains(t, out, "2021")
}

// TestCardsCommandBadPreset verifies an unknown preset fails with the
// bad-parameters exit code before any translation happens.
func TestCardsCommandBadPreset(t *testing.T) {
	_, err := runCommand(t, "cards", "--preset", "apocalyptic")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitBadParameters, cliErr.Code)
}

// TestCardsCommandBadTime verifies timestamp validation on the --time
// flag.
func TestCardsCommandBadTime(t *testing.T) {
	_, err := runCommand(t, "cards", "--time", "yesterday at noon")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitBadParameters, cliErr.Code)
}

// TestSpectrumCommandRequiresResources verifies solver-facing commands
// refuse to run without a resource root configured.
func TestSpectrumCommandRequiresResources(t *testing.T) {
	t.Setenv(resourcesEnv, "")

	_, err := runCommand(t, "spectrum")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no resource root configured")
}
