package model

import "fmt"

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// batch drivers (e.g. a time-series runner invoking atmospec once per
// timestamp) to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitBadParameters indicates a parameter failed translation, e.g. a
	// value outside one of the closed enumerations (season, surface type,
	// standard atmosphere), or an inconsistent mode combination detected
	// while formatting the card deck.
	ExitBadParameters ExitCode = 2

	// ExitSolverNotFound indicates the solver executable is not installed
	// or not on PATH (the shell reported exit code 127).
	ExitSolverNotFound ExitCode = 3

	// ExitSolverFailed indicates the solver ran but exited non-zero, or
	// exited zero while reporting an error in its own diagnostic log.
	ExitSolverFailed ExitCode = 4

	// ExitSunDown indicates the solver refused to run because the sun is
	// below the horizon for the requested time and location. This is an
	// expected condition for night-time timestamps; batch callers should
	// treat it as "skip", not as a failure.
	ExitSunDown ExitCode = 5

	// ExitMissingOutput indicates the solver exited cleanly but the
	// expected spectral output file was absent or unreadable.
	ExitMissingOutput ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
