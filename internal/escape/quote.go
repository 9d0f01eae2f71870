// Copyright (C) 2026 M. Palmer. All Rights Reserved.

// Package escape handles escaping of string contents for JSON output.
package escape

import "go4.org/mem"

// Quote escapes the contents of src for inclusion in a JSON string value.
// The enclosing quotation marks are not added.
//
// The escape set is backspace, form feed, newline, carriage return, tab,
// the quotation mark, and the backslash. All other bytes, including other
// control characters, are emitted verbatim.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch b {
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '"', '\\':
			buf = append(buf, '\\', b)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
