// Copyright (C) 2026 M. Palmer. All Rights Reserved.

package jval

import (
	"bufio"
	"io"

	"go4.org/mem"
)

// DefaultTokenLimit is the capture-buffer limit of a new Cursor, matching
// the 64-byte token buffer of the reference implementation. Use
// SetTokenLimit to change it.
const DefaultTokenLimit = 64

// A Cursor reads an input stream one byte at a time with single-byte
// pushback, and can record the raw text of a token into a bounded capture
// buffer.
//
// The line counter advances only inside SkipSpace. Newlines consumed while
// lexing a token do not move it, so the line reported with an error is the
// line at the most recent whitespace boundary, which may precede the exact
// physical line of the fault. This matches the reference implementation and
// is part of the error contract.
type Cursor struct {
	r     *bufio.Reader
	line  int
	limit int

	capturing bool
	tok       []byte
}

// NewCursor constructs a Cursor that consumes input from r.
func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br, limit: DefaultTokenLimit}
}

// SetTokenLimit changes the maximum number of bytes the capture buffer will
// hold before Next fails with ErrOverlongToken.
func (c *Cursor) SetTokenLimit(n int) { c.limit = n }

// Line reports the current source line, 0-based.
func (c *Cursor) Line() int { return c.line }

// Next returns the next byte of the input. At the end of the input it
// reports a *ParseError wrapping ErrUnexpectedEOF. While capture mode is
// active the byte is appended to the capture buffer, and exceeding the
// token limit reports a *ParseError wrapping ErrOverlongToken.
func (c *Cursor) Next() (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, NewParseError(ErrUnexpectedEOF, c.line, "Unexpected end of file")
	}
	if c.capturing {
		if len(c.tok) >= c.limit {
			return 0, NewParseError(ErrOverlongToken, c.line, "Overlong value")
		}
		c.tok = append(c.tok, b)
	}
	return b, nil
}

// Unread pushes back the byte most recently returned by Next, removing it
// from the capture buffer if capture mode is active. Only one byte of
// pushback is available: calling Unread twice without an intervening Next
// is a caller bug and its effect is undefined.
func (c *Cursor) Unread() {
	c.r.UnreadByte()
	if c.capturing && len(c.tok) > 0 {
		c.tok = c.tok[:len(c.tok)-1]
	}
}

// BeginCapture resets the capture buffer and starts recording the bytes
// consumed by Next.
func (c *Cursor) BeginCapture() {
	c.capturing = true
	c.tok = c.tok[:0]
}

// EndCapture stops recording and returns the captured text.
func (c *Cursor) EndCapture() string {
	c.capturing = false
	return string(c.tok)
}

// SkipSpace consumes a maximal run of spaces, tabs, carriage returns, and
// newlines, advancing the line counter once per newline. The first
// non-whitespace byte is left unconsumed. Bytes skipped here are never
// captured.
func (c *Cursor) SkipSpace() {
	for {
		b, err := c.r.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case '\n':
			c.line++
		case ' ', '\r', '\t':
		default:
			c.r.UnreadByte()
			return
		}
	}
}

// Expect consumes exactly want.Len() bytes and verifies that they match
// want. Any mismatch, including end of input, reports a *ParseError with
// the given cause and message. Bytes consumed here are never captured.
func (c *Cursor) Expect(want mem.RO, cause error, msg string) error {
	for i := 0; i < want.Len(); i++ {
		b, err := c.r.ReadByte()
		if err != nil || b != want.At(i) {
			return NewParseError(cause, c.line, msg)
		}
	}
	return nil
}
