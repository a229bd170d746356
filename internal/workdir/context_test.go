package workdir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContextLifecycle verifies the allocate/write/read/dispose cycle.
func TestContextLifecycle(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	require.DirExists(t, c.Path())

	require.NoError(t, c.WriteFile("input.txt", "line one\nline two\n"))

	lines, err := c.ReadLines("input.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"line one", "line two"}, lines)

	data, err := c.ReadFile("input.txt")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", string(data))

	dir := c.Path()
	require.NoError(t, c.Dispose())
	assert.NoDirExists(t, dir)
}

// TestContextsAreIsolated verifies two contexts never share a directory.
func TestContextsAreIsolated(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	defer a.Dispose()

	b, err := New()
	require.NoError(t, err)
	defer b.Dispose()

	assert.NotEqual(t, a.Path(), b.Path())
}

// TestDisposeIdempotent verifies repeated Dispose calls are no-ops.
func TestDisposeIdempotent(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	require.NoError(t, c.Dispose())
	require.NoError(t, c.Dispose())
	assert.Empty(t, c.Path())
}

// TestReadLinesEmptyFile verifies an empty file yields no lines rather
// than a single empty line.
func TestReadLinesEmptyFile(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	defer c.Dispose()

	require.NoError(t, c.WriteFile("empty.txt", ""))

	lines, err := c.ReadLines("empty.txt")
	require.NoError(t, err)
	assert.Nil(t, lines)
}

// TestLink verifies resource groups are staged as symlinks resolving to
// the originals.
func TestLink(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Albedo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Albedo", "table.dat"), []byte("17\n"), 0o644))

	c, err := New()
	require.NoError(t, err)
	defer c.Dispose()

	require.NoError(t, c.Link([]string{"Albedo"}, root))

	linked := filepath.Join(c.Path(), "Albedo")
	info, err := os.Lstat(linked)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "resource groups are linked, not copied")

	data, err := os.ReadFile(filepath.Join(linked, "table.dat"))
	require.NoError(t, err)
	assert.Equal(t, "17\n", string(data))
}

// TestLinkMissingGroup verifies the error names the absent group.
func TestLinkMissingGroup(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	defer c.Dispose()

	err = c.Link([]string{"Gases"}, t.TempDir())
	assert.ErrorContains(t, err, `resource group "Gases" not found`)
}

// TestExecRunnerSuccess verifies a zero exit and stdout redirection into
// the named log file.
func TestExecRunnerSuccess(t *testing.T) {
	dir := t.TempDir()

	code, stderr, err := ExecRunner{}.Run(context.Background(), dir, "echo solver output", "run.log")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(filepath.Join(dir, "run.log"))
	require.NoError(t, err)
	assert.Equal(t, "solver output\n", string(data))
}

// TestExecRunnerMissingCommand verifies the shell's 127 convention for a
// command that does not exist.
func TestExecRunnerMissingCommand(t *testing.T) {
	code, _, err := ExecRunner{}.Run(context.Background(), t.TempDir(),
		"definitely-not-an-installed-command-xyz", "run.log")
	require.NoError(t, err, "a missing command is a classified outcome, not a runner failure")
	assert.Equal(t, 127, code)
}

// TestExecRunnerExitCodeAndStderr verifies non-zero exit codes and stderr
// capture pass through unclassified.
func TestExecRunnerExitCodeAndStderr(t *testing.T) {
	code, stderr, err := ExecRunner{}.Run(context.Background(), t.TempDir(),
		"echo oops 1>&2; exit 3", "run.log")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, stderr, "oops")
}

// TestExecRunnerCancelled verifies cancellation is fatal rather than a
// classified exit code.
func TestExecRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ExecRunner{}.Run(ctx, t.TempDir(), "sleep 10", "run.log")
	assert.ErrorIs(t, err, context.Canceled)
}
