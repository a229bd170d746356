// Package smarts orchestrates invocations of the SMARTS radiative-transfer
// solver.
//
// A Model is built from an explicit Config (parameters, resource root,
// solver command, execution backend) and drives the full pipeline for one
// invocation: translate parameters, format the card deck, stage resources
// into a fresh working context, run the solver, classify the outcome, and
// parse the spectral output. Each invocation is synchronous and uses an
// exclusively owned working directory, so concurrent runs never share
// files; the directory is removed on every exit path.
//
// Outcomes are classified into distinct error types (see errors.go) so
// batch callers (e.g. a time-series driver invoking the model once per
// timestamp) can skip expected conditions like SunDownError without
// treating them as fatal.
package smarts
