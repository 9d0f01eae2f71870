// Copyright (C) 2026 M. Palmer. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ParseError. Use errors.Is to test which cause
// produced a given error.
var (
	ErrUnexpectedEOF          = errors.New("unexpected end of input")
	ErrOverlongToken          = errors.New("token exceeds length limit")
	ErrUnterminatedString     = errors.New("unterminated string")
	ErrInvalidEscape          = errors.New("invalid escape code")
	ErrInvalidHexEscape       = errors.New("invalid hex escape")
	ErrInvalidSurrogate       = errors.New("invalid UTF-16 surrogate")
	ErrInvalidCodepoint       = errors.New("invalid Unicode codepoint")
	ErrInvalidNumber          = errors.New("invalid number")
	ErrExpectedKey            = errors.New("expected string key")
	ErrExpectedColon          = errors.New("expected colon after key")
	ErrExpectedCommaOrBrace   = errors.New("expected comma or close brace")
	ErrExpectedCommaOrBracket = errors.New("expected comma or close bracket")
	ErrInvalidLiteral         = errors.New("invalid literal")
	ErrTrailingContent        = errors.New("trailing content after value")
	ErrDepthExceeded          = errors.New("maximum nesting depth exceeded")
)

// ParseError is the concrete type of all errors reported by the parser and
// the cursor. Line is the 0-based source line at the most recent whitespace
// boundary before the failure; see the Cursor line-counting contract.
type ParseError struct {
	Message string
	Line    int

	cause error
}

// NewParseError constructs a ParseError at the given line wrapping cause.
func NewParseError(cause error, line int, message string) *ParseError {
	return &ParseError{Message: message, Line: line, cause: cause}
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.cause }
