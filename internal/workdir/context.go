package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Context is an isolated, exclusively owned working directory for a
// single solver invocation. It is created by New and destroyed by
// Dispose; all files written or read during the invocation live under it.
type Context struct {
	dir string
}

// New allocates a fresh temporary working directory. Each call returns a
// unique directory, so concurrent invocations within one process never
// share files.
func New() (*Context, error) {
	dir, err := os.MkdirTemp("", "atmospec-")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate working directory: %w", err)
	}
	return &Context{dir: dir}, nil
}

// Path returns the absolute path of the working directory. It appears in
// error messages so failed runs can be correlated with leftover
// directories when cleanup is deliberately skipped during debugging.
func (c *Context) Path() string {
	return c.dir
}

// Link stages the named resource groups from a read-only resource root
// into the working directory by symlink. Linking rather than copying
// keeps per-run setup cheap: the reference datasets (albedo tables, gas
// profiles, solar spectra) run to tens of megabytes and are never
// modified by the solver.
func (c *Context) Link(names []string, fromPath string) error {
	for _, name := range names {
		target := filepath.Join(fromPath, name)
		if _, err := os.Stat(target); err != nil {
			return fmt.Errorf("resource group %q not found under %s: %w", name, fromPath, err)
		}
		if err := os.Symlink(target, filepath.Join(c.dir, name)); err != nil {
			return fmt.Errorf("failed to link resource group %q: %w", name, err)
		}
	}
	return nil
}

// WriteFile writes a text file by name into the working directory.
func (c *Context) WriteFile(name, content string) error {
	if err := os.WriteFile(filepath.Join(c.dir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// ReadLines reads a text file by name from the working directory and
// returns its lines. A trailing newline does not produce an empty final
// line.
func (c *Context) ReadLines(name string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// ReadFile reads a file by name from the working directory and returns
// its raw contents.
func (c *Context) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(c.dir, name))
}

// Dispose removes the working directory and everything in it. It is safe
// to call on an already-disposed Context; subsequent calls are no-ops.
// Dispose must run on every exit path of an invocation, success and
// failure alike.
func (c *Context) Dispose() error {
	if c.dir == "" {
		return nil
	}
	err := os.RemoveAll(c.dir)
	c.dir = ""
	return err
}
