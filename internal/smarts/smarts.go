package smarts

import (
	"context"
	"fmt"
	"strings"

	"github.com/aoyama-geo/atmospec/internal/card"
	"github.com/aoyama-geo/atmospec/internal/params"
	"github.com/aoyama-geo/atmospec/internal/spectrum"
	"github.com/aoyama-geo/atmospec/internal/workdir"
)

// Fixed file names of the solver's input/output contract. These are an
// external-interface contract with the SMARTS binary and must not change.
const (
	// InputFile is the card deck file the solver reads.
	InputFile = "smarts295.inp.txt"

	// OutputFile is the spectral (spreadsheet) output the solver writes.
	OutputFile = "smarts295.ext.txt"

	// SolverLog is the solver's own diagnostic log, scanned for error
	// markers after a zero exit.
	SolverLog = "smarts295.out.txt"

	// StdoutLog receives the solver's redirected console output.
	StdoutLog = "log.txt"

	// DefaultCommand is the solver command line used when Config.Command
	// is empty.
	DefaultCommand = "smarts.py"
)

// Log markers scanned in SolverLog. Both are byte-for-byte contracts with
// the solver's diagnostic output; do not normalize or approximate them.
const (
	errorMarker   = "ERROR"
	sunDownMarker = "** ERROR #7 ***"
)

// ResourceGroups names the static reference datasets the solver expects
// beside its input file: surface reflectance tables, photometric/CIE
// data, gas absorption profiles and solar spectra.
var ResourceGroups = []string{"Albedo", "CIE_data", "Gases", "Solar"}

// Config assembles everything a Model needs for an invocation. It is
// built explicitly by the application entry point; the package keeps no
// ambient process-wide state.
type Config struct {
	// Params are the caller's semantic parameters, merged over the
	// process defaults during translation.
	Params params.Set

	// ResourceRoot is the directory containing the ResourceGroups
	// subtrees, staged by symlink into each working context.
	ResourceRoot string

	// Command is the solver command line. Defaults to DefaultCommand.
	Command string

	// Runner executes the solver. Defaults to local execution via
	// workdir.ExecRunner; substitute the docker backend to run a
	// containerized solver, or a fake in tests.
	Runner workdir.Runner

	// WarnUnknown, when non-nil, is called once per semantic parameter
	// name that translation did not recognize. Unknown names are a
	// diagnostic, never an error.
	WarnUnknown func(name string)
}

// Model runs the SMARTS solver for one parameter configuration. All
// per-run state lives in the invocation; a Model may be reused across
// sequential runs.
type Model struct {
	cfg Config
}

// New creates a Model, filling in the Config defaults.
func New(cfg Config) *Model {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.Runner == nil {
		cfg.Runner = workdir.ExecRunner{}
	}
	return &Model{cfg: cfg}
}

// Cards translates the configured parameters and formats the card deck
// without touching the filesystem. This is the pure front half of Run,
// exposed for dry-run inspection of the exact solver input.
func (m *Model) Cards() (*card.Deck, error) {
	translated, unknown, err := params.Translate(m.cfg.Params)
	if err != nil {
		return nil, err
	}
	if m.cfg.WarnUnknown != nil {
		for _, name := range unknown {
			m.cfg.WarnUnknown(name)
		}
	}
	return card.Format(translated)
}

// Run performs one solver invocation and returns the working context
// positioned after a validated successful run. The caller owns the
// returned context and must Dispose it; on any error the context has
// already been released.
//
// Outcome classification, in order:
//   - exit code 127: NotFoundError (solver not installed)
//   - any other non-zero exit: ExecError
//   - zero exit: the solver's diagnostic log is scanned line by line for
//     the literal ERROR marker; the sun-below-horizon diagnostic yields
//     SunDownError, any other marked line yields SolverError
//   - no marked lines: success
func (m *Model) Run(ctx context.Context) (w *workdir.Context, err error) {
	// Translate and format before spawning anything: parameter problems
	// (enumeration violations, mode inconsistencies) are deterministic
	// and must fail without touching the process boundary.
	deck, err := m.Cards()
	if err != nil {
		return nil, err
	}

	wc, err := workdir.New()
	if err != nil {
		return nil, err
	}
	// Release the context on every error path below; the named err is
	// set by each return statement before the deferred function runs.
	// Success hands ownership to the caller.
	defer func() {
		if err != nil {
			_ = wc.Dispose()
		}
	}()

	if err := wc.Link(ResourceGroups, m.cfg.ResourceRoot); err != nil {
		return nil, err
	}
	if err := wc.WriteFile(InputFile, deck.String()); err != nil {
		return nil, err
	}

	code, stderr, runErr := m.cfg.Runner.Run(ctx, wc.Path(), m.cfg.Command, StdoutLog)
	if runErr != nil {
		// The runner could not complete at all (cancellation, broken
		// backend). Pass it through as fatal.
		return nil, fmt.Errorf("solver invocation failed: %w", runErr)
	}

	switch {
	case code == 127:
		return nil, &NotFoundError{Code: code, Stderr: stderr}
	case code != 0:
		return nil, &ExecError{Dir: wc.Path(), Code: code, Stderr: stderr}
	}

	// Zero exit is not yet success: SMARTS reports input and geometry
	// problems in its own log while still exiting cleanly.
	logLines, readErr := wc.ReadLines(SolverLog)
	if readErr != nil {
		return nil, fmt.Errorf("%s: failed to read solver log %s: %w", wc.Path(), SolverLog, readErr)
	}
	for _, line := range logLines {
		if !strings.Contains(line, errorMarker) {
			continue
		}
		solverErr := &SolverError{Dir: wc.Path(), Line: line}
		if strings.Contains(line, sunDownMarker) {
			return nil, &SunDownError{Cause: solverErr}
		}
		return nil, solverErr
	}

	return wc, nil
}

// Spectrum runs the solver and parses its spectral output into a
// wavelength-indexed table. The working context is released before
// Spectrum returns, success or failure.
func (m *Model) Spectrum(ctx context.Context) (*spectrum.Table, error) {
	w, err := m.Run(ctx)
	if err != nil {
		return nil, err
	}
	defer w.Dispose()

	lines, err := w.ReadLines(OutputFile)
	if err != nil {
		return nil, &MissingOutputError{Dir: w.Path(), Name: OutputFile, Err: err}
	}
	return spectrum.Parse(lines)
}

// Irradiance runs the solver and integrates the resulting spectrum over
// wavelength, yielding broadband irradiance per output component.
func (m *Model) Irradiance(ctx context.Context) (spectrum.Broadband, error) {
	table, err := m.Spectrum(ctx)
	if err != nil {
		return nil, err
	}
	return spectrum.Integrate(table)
}

// RawFile runs the solver and returns the raw contents of an arbitrary
// file from the working context, which is released before RawFile
// returns. Useful for retrieving solver outputs this adapter does not
// model.
func (m *Model) RawFile(ctx context.Context, name string) ([]byte, error) {
	w, err := m.Run(ctx)
	if err != nil {
		return nil, err
	}
	defer w.Dispose()

	data, err := w.ReadFile(name)
	if err != nil {
		return nil, &MissingOutputError{Dir: w.Path(), Name: name, Err: err}
	}
	return data, nil
}
