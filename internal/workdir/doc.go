// Package workdir manages isolated working directories for solver
// invocations.
//
// The SMARTS binary reads its input file and writes its output files by
// fixed name in the current directory, and makes no reentrancy guarantees,
// so every invocation gets a freshly allocated, exclusively owned
// directory. The Context type owns that directory for the lifetime of one
// run: it stages static resource datasets by symlink, writes the input
// deck, exposes the solver's text outputs, and removes the whole tree on
// Dispose. Callers must arrange Dispose on every exit path, typically
// with defer.
//
// Command execution is abstracted behind the Runner interface so the
// solver can be invoked either as a local process (ExecRunner) or inside
// a container (internal/docker).
package workdir
