// Copyright (C) 2026 M. Palmer. All Rights Reserved.

package ast

import (
	"io"
	"math"
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/mpalmer/jval/internal/escape"
)

// Print writes the canonical compact JSON encoding of v to w, with no
// trailing newline.
func Print(w io.Writer, v Value) error {
	var sb strings.Builder
	v.encode(&sb)
	_, err := io.WriteString(w, sb.String())
	return err
}

func jsonOf(v Value) string {
	var sb strings.Builder
	v.encode(&sb)
	return sb.String()
}

// JSON satisfies the Value interface.
func (n Null) JSON() string { return "null" }

func (Null) encode(sb *strings.Builder) { sb.WriteString("null") }

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return b.String() }

func (b Bool) encode(sb *strings.Builder) { sb.WriteString(b.String()) }

// JSON satisfies the Value interface. Positive and negative infinity
// render as the out-of-range literals 1.0e5000 and -1.0e5000, and NaN
// renders as null, matching the reference implementation. All other values
// use the shortest decimal form that parses back to the same 64-bit float.
func (n Number) JSON() string { return jsonOf(n) }

func (n Number) encode(sb *strings.Builder) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		sb.WriteString("1.0e5000")
	case math.IsInf(f, -1):
		sb.WriteString("-1.0e5000")
	case math.IsNaN(f):
		sb.WriteString("null")
	default:
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}

// JSON satisfies the Value interface.
func (s String) JSON() string { return jsonOf(s) }

func (s String) encode(sb *strings.Builder) {
	sb.WriteByte('"')
	sb.Write(escape.Quote(mem.S(string(s))))
	sb.WriteByte('"')
}

// JSON satisfies the Value interface.
func (a Array) JSON() string { return jsonOf(a) }

func (a Array) encode(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, elt := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		elt.encode(sb)
	}
	sb.WriteByte(']')
}

// JSON satisfies the Value interface. Members are rendered in ascending
// order by key.
func (o Object) JSON() string { return jsonOf(o) }

func (o Object) encode(sb *strings.Builder) {
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteString(", ")
		}
		String(m.Key).encode(sb)
		sb.WriteString(": ")
		m.Value.encode(sb)
	}
	sb.WriteByte('}')
}
