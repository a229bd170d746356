// Package card serializes a translated parameter set into the SMARTS
// input-file format.
//
// SMARTS reads a strictly positional "card deck": a fixed sequence of
// numbered records whose meaning is determined by position, not by
// keyword. The order of cards must therefore never change; only the
// interpolated values vary between runs. Several cards are constant mode
// selectors that pin the solver to the modes this adapter understands
// (e.g. the output-column card is fixed so the output parser's column
// contract holds).
//
// Cards may carry a trailing inline comment after a tab and "!". The
// solver ignores comments; they exist purely for human traceability of
// the generated file and may be omitted without semantic effect.
package card
