// Package docker provides a containerized execution backend for the
// SMARTS solver.
//
// Scientific solver binaries are often distributed as container images so
// their Fortran runtime and reference data ship together. This package
// implements workdir.Runner by running the solver command inside a
// one-shot container with the working context bind-mounted, so the rest
// of the pipeline (card deck in, output files out, exit-code
// classification) is identical to local execution.
//
// The package uses github.com/docker/docker/client as the underlying
// Docker SDK, with version negotiation enabled for broad compatibility,
// and auto-detects the daemon socket across platforms.
package docker
