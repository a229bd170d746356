package workdir

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Runner executes a solver command line inside a working directory, with
// the command's standard output redirected to logName, and reports the
// process exit code together with captured standard error.
//
// Implementations exist for local execution (ExecRunner) and container
// execution (internal/docker). Both preserve the shell convention that a
// missing executable yields exit code 127, which the orchestrator relies
// on to distinguish "not installed" from "ran and failed".
type Runner interface {
	Run(ctx context.Context, dir, command, logName string) (exitCode int, stderr string, err error)
}

// ExecRunner runs the solver as a local child process via the system
// shell. The calling goroutine blocks until the process exits or ctx is
// cancelled.
type ExecRunner struct{}

// Run executes `sh -c "<command> > <logName>"` with dir as the working
// directory. Routing through the shell keeps the historical invocation
// shape (the solver writes its console chatter to a redirected log) and
// means a missing executable surfaces as the shell's exit code 127 rather
// than as a Go exec lookup error.
//
// A non-zero exit code is not an error at this level: the orchestrator
// owns exit-code classification. The returned error is reserved for
// failures to run at all (e.g. ctx cancelled before completion, or the
// shell itself missing).
func (ExecRunner) Run(ctx context.Context, dir, command, logName string) (int, string, error) {
	// #nosec G204: the command line is assembled internally from
	// configuration, not from untrusted input.
	cmd := exec.CommandContext(ctx, "sh", "-c", command+" > "+logName)
	cmd.Dir = dir

	var stderr strings.Builder
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process started and exited non-zero; report the code
			// and let the caller classify it. Cancellation also lands
			// here (the process is killed and exits non-zero), so check
			// ctx to keep cancellation a hard error.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return exitErr.ExitCode(), stderr.String(), ctxErr
			}
			return exitErr.ExitCode(), stderr.String(), nil
		}
		return -1, stderr.String(), err
	}

	return 0, stderr.String(), nil
}
