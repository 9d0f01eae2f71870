// Copyright (C) 2026 M. Palmer. All Rights Reserved.

// Package jval provides the character-level machinery for parsing JSON
// text: a pushback cursor over an input stream, and the error type shared
// by the whole module.
//
// # Cursors
//
// The Cursor type wraps an io.Reader and delivers the input one byte at a
// time, with single-byte pushback and a bounded capture buffer used to
// collect the raw text of a token:
//
//	c := jval.NewCursor(input)
//	c.BeginCapture()
//	// ... consume the token with c.Next ...
//	text := c.EndCapture()
//
// Cursors also skip insignificant whitespace and maintain the line counter
// used for error reporting. See the Cursor documentation for the exact
// line-counting contract.
//
// # Errors
//
// Every failure in this module is reported as a *ParseError carrying a
// human-readable message and a best-effort source line. A ParseError wraps
// one of the sentinel cause values (ErrUnexpectedEOF, ErrInvalidNumber,
// and so on), so callers can classify failures with errors.Is:
//
//	v, err := ast.Parse(r)
//	if errors.Is(err, jval.ErrDepthExceeded) {
//	   // input was nested too deeply
//	}
//
// Parsing JSON text into a value tree is provided by the ast subpackage.
package jval
