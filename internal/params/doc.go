// Package params defines the user-facing parameter model for atmospec and
// the translation layer that maps it onto the SMARTS solver's internal
// parameter vocabulary.
//
// Callers describe a scene with semantically named parameters in physical
// units ("latitude", "surface_type", "tropospheric_ozone" in atm-cm, ...).
// The solver wants terse positional short-codes in its own units ("LATIT",
// "IALBDX", "ApO3" in ppmv, ...). Translate bridges the two:
//   - caller values are merged over a fixed defaults table,
//   - direct parameters are renamed and passed through,
//   - derived parameters run a conversion (unit scaling, enumeration
//     lookup, calendar decomposition) that may fan out into several
//     short-codes,
//   - a small list of parameters accepted for compatibility with other
//     solver backends is silently dropped,
//   - anything else is collected as an unknown-key diagnostic, never an
//     error, so that superset configuration objects shared across solver
//     backends remain usable.
//
// The package is pure except for LoadFile, which reads parameter files in
// JSONC (JSON with comments) or YAML form.
package params
