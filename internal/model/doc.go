// Package model defines the shared value types for the atmospec CLI.
//
// This package contains pure data structures with no external dependencies.
// It defines the process exit codes (ExitCode) and a custom error type
// (CLIError) that carries an exit code, so that domain errors raised deep
// in the solver adapter can be translated into meaningful OS exit statuses
// at the CLI boundary.
package model
