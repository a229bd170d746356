package smarts

import "fmt"

// NotFoundError indicates the solver executable is missing from the
// execution environment. It is recognized by the shell convention of exit
// code 127 and kept distinct from ExecError so installation problems are
// immediately tellable apart from solver failures.
type NotFoundError struct {
	// Code is the process exit code (always 127 in practice).
	Code int

	// Stderr is the captured standard error text.
	Stderr string
}

// Error satisfies the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%d: SMARTS executable not found. Did you install it correctly? stderr:\n%s", e.Code, e.Stderr)
}

// ExecError indicates the solver ran but exited non-zero for a reason
// other than "not found".
type ExecError struct {
	// Dir is the working context path, for correlating with any preserved
	// debugging artifacts.
	Dir string

	// Code is the non-zero process exit code.
	Code int

	// Stderr is the captured standard error text.
	Stderr string
}

// Error satisfies the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: execution failed with code %d. stderr:\n%s", e.Dir, e.Code, e.Stderr)
}

// SolverError indicates the solver exited zero but reported an error in
// its own diagnostic log. The offending log line is carried verbatim.
type SolverError struct {
	// Dir is the working context path.
	Dir string

	// Line is the log line containing the error marker.
	Line string
}

// Error satisfies the error interface.
func (e *SolverError) Error() string {
	return fmt.Sprintf("%s: solver reported an error:\n%s", e.Dir, e.Line)
}

// SunDownError is the specialization of SolverError for the solver's
// sun-below-horizon diagnostic: the solar geometry for the requested time
// and place makes the computation meaningless. It is an expected,
// non-fatal condition for night-time timestamps; batch callers should
// match it with errors.As and skip rather than abort.
type SunDownError struct {
	// Cause is the underlying solver error carrying the diagnostic line.
	Cause *SolverError
}

// Error satisfies the error interface.
func (e *SunDownError) Error() string {
	return fmt.Sprintf("%s: solver refuses to run while the sun is down:\n%s", e.Cause.Dir, e.Cause.Line)
}

// Unwrap exposes the underlying SolverError, so errors.As with a
// *SolverError target also matches a SunDownError.
func (e *SunDownError) Unwrap() error {
	return e.Cause
}

// MissingOutputError indicates the solver exited cleanly with no detected
// log error, yet the expected output file is absent or unreadable.
type MissingOutputError struct {
	// Dir is the working context path.
	Dir string

	// Name is the expected output file name.
	Name string

	// Err is the underlying read error.
	Err error
}

// Error satisfies the error interface.
func (e *MissingOutputError) Error() string {
	return fmt.Sprintf("%s: solver did not produce output %s", e.Dir, e.Name)
}

// Unwrap returns the underlying read error.
func (e *MissingOutputError) Unwrap() error {
	return e.Err
}
