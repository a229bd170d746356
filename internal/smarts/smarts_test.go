package smarts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoyama-geo/atmospec/internal/params"
	"github.com/aoyama-geo/atmospec/internal/spectrum"
)

// fakeRunner stands in for the solver process. It records the working
// directory it was handed and plants the configured solver log and
// spectral output there before reporting the configured exit code.
type fakeRunner struct {
	exitCode int
	stderr   string
	logText  string
	output   string
	err      error

	dir     string
	command string
}

func (f *fakeRunner) Run(_ context.Context, dir, command, _ string) (int, string, error) {
	f.dir = dir
	f.command = command
	if f.err != nil {
		return 0, "", f.err
	}
	if f.logText != "" {
		if err := os.WriteFile(filepath.Join(dir, SolverLog), []byte(f.logText), 0o644); err != nil {
			return 0, "", err
		}
	}
	if f.output != "" {
		if err := os.WriteFile(filepath.Join(dir, OutputFile), []byte(f.output), 0o644); err != nil {
			return 0, "", err
		}
	}
	return f.exitCode, f.stderr, nil
}

// setupResources creates a resource root holding the four reference
// dataset groups the orchestrator stages into each working directory.
func setupResources(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range ResourceGroups {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}
	return root
}

func newTestModel(t *testing.T, runner *fakeRunner, p params.Set) *Model {
	t.Helper()
	return New(Config{
		Params:       p,
		ResourceRoot: setupResources(t),
		Runner:       runner,
	})
}

const cleanLog = "SMARTS, version 2.9.5\nCalculation complete.\n"

// sampleOutput is a minimal spectral file in the solver's fixed layout:
// one header line, then wavelength in nm and four irradiance columns in
// W m-2 nm-1.
const sampleOutput = `Wvlgth Direct_normal_irradiance Difuse_horizn_irradiance Global_horizn_irradiance Direct_horizn_irradiance
500.0 1.0 0.2 1.2 0.9
510.0 1.1 0.2 1.3 1.0
520.0 1.2 0.3 1.5 1.1
`

// TestRunSuccess verifies the happy path: the input deck is written,
// resources are staged, and the caller receives a live working context.
func TestRunSuccess(t *testing.T) {
	runner := &fakeRunner{logText: cleanLog}
	m := newTestModel(t, runner, nil)

	w, err := m.Run(context.Background())
	require.NoError(t, err)
	defer w.Dispose()

	assert.Equal(t, w.Path(), runner.dir, "solver runs inside the working context")
	assert.Equal(t, DefaultCommand, runner.command)

	// The card deck must be on disk where the solver expects it.
	deck, err := w.ReadFile(InputFile)
	require.NoError(t, err)
	assert.Contains(t, string(deck), "COMNT")

	// And the reference datasets must be staged beside it.
	for _, name := range ResourceGroups {
		assert.FileExistsf(t, filepath.Join(w.Path(), name), "resource group %s", name)
	}
}

// TestRunSolverNotInstalled verifies exit code 127 classifies as
// NotFoundError and the working directory is released.
func TestRunSolverNotInstalled(t *testing.T) {
	runner := &fakeRunner{exitCode: 127, stderr: "sh: smarts.py: not found"}
	m := newTestModel(t, runner, nil)

	_, err := m.Run(context.Background())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 127, notFound.Code)
	assert.Contains(t, notFound.Stderr, "not found")
	assert.NoDirExists(t, runner.dir)
}

// TestRunSolverCrashed verifies any other non-zero exit classifies as
// ExecError carrying the code and captured stderr.
func TestRunSolverCrashed(t *testing.T) {
	runner := &fakeRunner{exitCode: 42, stderr: "segmentation fault"}
	m := newTestModel(t, runner, nil)

	_, err := m.Run(context.Background())
	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 42, execErr.Code)
	assert.Contains(t, execErr.Stderr, "segmentation fault")
	assert.NoDirExists(t, runner.dir)
}

// TestRunSolverLoggedError verifies a zero exit is still a failure when
// the solver's own log carries an error marker.
func TestRunSolverLoggedError(t *testing.T) {
	runner := &fakeRunner{logText: "SMARTS, version 2.9.5\n** ERROR #2 *** Ground albedo file missing\n"}
	m := newTestModel(t, runner, nil)

	_, err := m.Run(context.Background())
	var solverErr *SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Contains(t, solverErr.Line, "ERROR #2")
	assert.NoDirExists(t, runner.dir)
}

// TestRunSunBelowHorizon verifies the solver's geometry diagnostic gets
// its own type, and that it still matches SolverError through the unwrap
// chain so generic handling keeps working.
func TestRunSunBelowHorizon(t *testing.T) {
	runner := &fakeRunner{logText: "** ERROR #7 *** The sun is below the horizon at this time.\n"}
	m := newTestModel(t, runner, nil)

	_, err := m.Run(context.Background())
	var sunDown *SunDownError
	require.ErrorAs(t, err, &sunDown)

	var solverErr *SolverError
	assert.ErrorAs(t, err, &solverErr, "sun-down is a specialization of a logged solver error")
	assert.NoDirExists(t, runner.dir)
}

// TestRunBadParametersNeverSpawns verifies parameter failures are caught
// before the runner is invoked or a directory allocated.
func TestRunBadParametersNeverSpawns(t *testing.T) {
	runner := &fakeRunner{logText: cleanLog}
	m := newTestModel(t, runner, params.Set{"season": "monsoon"})

	_, err := m.Run(context.Background())
	var enumErr *params.EnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Empty(t, runner.dir, "the runner must not be invoked on parameter errors")
}

// TestRunRunnerFailure verifies backend failures pass through as fatal
// errors, distinct from classified solver outcomes.
func TestRunRunnerFailure(t *testing.T) {
	backendErr := errors.New("docker daemon unreachable")
	m := newTestModel(t, &fakeRunner{err: backendErr}, nil)

	_, err := m.Run(context.Background())
	assert.ErrorIs(t, err, backendErr)
}

// TestRunCustomCommand verifies Config.Command overrides the default
// solver command line.
func TestRunCustomCommand(t *testing.T) {
	runner := &fakeRunner{logText: cleanLog}
	m := New(Config{
		Params:       nil,
		ResourceRoot: setupResources(t),
		Command:      "python3 /opt/smarts/smarts.py",
		Runner:       runner,
	})

	w, err := m.Run(context.Background())
	require.NoError(t, err)
	defer w.Dispose()
	assert.Equal(t, "python3 /opt/smarts/smarts.py", runner.command)
}

// TestSpectrum verifies the end-to-end path from parameters to a parsed,
// unit-converted spectral table, and that the working directory is gone
// by the time the table is returned.
func TestSpectrum(t *testing.T) {
	runner := &fakeRunner{logText: cleanLog, output: sampleOutput}
	m := newTestModel(t, runner, nil)

	table, err := m.Spectrum(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())
	assert.InDelta(t, 0.5, table.Wavelength[0], 1e-12, "nm converts to um")
	assert.InDelta(t, 1000.0, table.Irradiance["direct_normal"][0], 1e-9, "W m-2 nm-1 converts to W m-2 um-1")
	assert.InDelta(t, 300.0, table.Irradiance["diffuse"][2], 1e-9)
	assert.NoDirExists(t, runner.dir, "spectrum releases the working directory")
}

// TestSpectrumMissingOutput verifies a clean run that produced no
// spectral file reports MissingOutputError naming the file.
func TestSpectrumMissingOutput(t *testing.T) {
	runner := &fakeRunner{logText: cleanLog}
	m := newTestModel(t, runner, nil)

	_, err := m.Spectrum(context.Background())
	var missing *MissingOutputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, OutputFile, missing.Name)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestIrradiance verifies broadband integration over the parsed spectrum.
func TestIrradiance(t *testing.T) {
	runner := &fakeRunner{logText: cleanLog, output: sampleOutput}
	m := newTestModel(t, runner, nil)

	broadband, err := m.Irradiance(context.Background())
	require.NoError(t, err)

	// direct_normal: trapezoid over (0.50, 1000), (0.51, 1100), (0.52, 1200).
	assert.InDelta(t, 22.0, broadband["direct_normal"], 1e-9)
	for _, column := range spectrum.Columns {
		assert.Containsf(t, broadband, column, "column %s integrated", column)
	}
}

// TestRawFile verifies retrieval of unmodeled solver outputs.
func TestRawFile(t *testing.T) {
	runner := &fakeRunner{logText: cleanLog}
	m := newTestModel(t, runner, nil)

	data, err := m.RawFile(context.Background(), SolverLog)
	require.NoError(t, err)
	assert.Equal(t, cleanLog, string(data))
	assert.NoDirExists(t, runner.dir)

	_, err = m.RawFile(context.Background(), "nonexistent.txt")
	var missing *MissingOutputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "nonexistent.txt", missing.Name)
}

// TestCardsDryRun verifies Cards renders the deck without touching the
// filesystem or the runner.
func TestCardsDryRun(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestModel(t, runner, params.Set{"description": "dry run"})

	deck, err := m.Cards()
	require.NoError(t, err)
	assert.Contains(t, deck.String(), "'dry_run'")
	assert.Empty(t, runner.dir)
}

// TestCardsWarnsUnknown verifies the unknown-parameter diagnostic hook.
func TestCardsWarnsUnknown(t *testing.T) {
	var warned []string
	m := New(Config{
		Params:      params.Set{"flux_capacitance": 1.21},
		WarnUnknown: func(name string) { warned = append(warned, name) },
	})

	_, err := m.Cards()
	require.NoError(t, err)
	assert.Equal(t, []string{"flux_capacitance"}, warned)
}
