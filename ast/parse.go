// Copyright (C) 2026 M. Palmer. All Rights Reserved.

package ast

import (
	"errors"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"go4.org/mem"

	"github.com/mpalmer/jval"
)

// DefaultMaxDepth is the nesting depth limit of a new Parser. Use
// SetMaxDepth to change it.
const DefaultMaxDepth = 10000

// Parse parses a single JSON value from r using the default limits.
// The input must contain exactly one value; anything but whitespace after
// it is an error. In case of error the returned error has concrete type
// *jval.ParseError and no value is returned.
func Parse(r io.Reader) (Value, error) { return NewParser(r).Parse() }

// A Parser is a one-shot recursive-descent parser for a single JSON value.
// Parsers are not safe for concurrent use, but independent parsers share
// no state and may run concurrently.
type Parser struct {
	c        *jval.Cursor
	maxDepth int
}

// NewParser constructs a Parser that consumes input from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{c: jval.NewCursor(r), maxDepth: DefaultMaxDepth}
}

// SetMaxDepth changes the maximum nesting depth of arrays and objects the
// parser will accept before failing with jval.ErrDepthExceeded.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// SetTokenLimit changes the maximum length in bytes of a number literal or
// hex escape; see jval.Cursor.SetTokenLimit.
func (p *Parser) SetTokenLimit(n int) { p.c.SetTokenLimit(n) }

// Parse parses and returns a single value, then verifies that only
// whitespace remains in the input. Any failure aborts the whole parse;
// there is no partial result.
func (p *Parser) Parse() (Value, error) {
	v, err := p.parseTop()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (p *Parser) parseTop() (v Value, err error) {
	defer p.recoverParseError(&err)

	v = p.parseValue(0)
	p.c.SkipSpace()
	if _, ok := p.nextOK(); ok {
		p.fail(jval.ErrTrailingContent, "Unexpected data after value")
	}
	return v, nil
}

func (p *Parser) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		pe, ok := serr.(*jval.ParseError)
		if !ok {
			panic(serr)
		}
		*errp = pe
	}
}

func (p *Parser) fail(cause error, msg string) {
	panic(jval.NewParseError(cause, p.c.Line(), msg))
}

// next returns the next input byte, failing the parse at end of input.
func (p *Parser) next() byte {
	b, err := p.c.Next()
	if err != nil {
		panic(err)
	}
	return b
}

// nextOK returns the next input byte, reporting false at end of input.
// Other cursor failures abort the parse.
func (p *Parser) nextOK() (byte, bool) {
	b, err := p.c.Next()
	if err != nil {
		if errors.Is(err, jval.ErrUnexpectedEOF) {
			return 0, false
		}
		panic(err)
	}
	return b, true
}

func (p *Parser) expect(lit string, cause error, msg string) {
	if err := p.c.Expect(mem.S(lit), cause, msg); err != nil {
		panic(err)
	}
}

// parseValue consumes a single value of any type, dispatching on the first
// non-whitespace byte.
func (p *Parser) parseValue(depth int) Value {
	if depth > p.maxDepth {
		p.fail(jval.ErrDepthExceeded, "Exceeded maximum nesting depth")
	}
	p.c.SkipSpace()
	b := p.next()
	switch {
	case b == '{':
		return p.parseObject(depth)
	case b == '[':
		return p.parseArray(depth)
	case b == '"':
		return p.parseString()
	case isNumStart(b):
		p.c.Unread()
		return p.parseNumber()
	case b == 't':
		p.expect("rue", jval.ErrInvalidLiteral, "Invalid literal")
		return Bool(true)
	case b == 'f':
		p.expect("alse", jval.ErrInvalidLiteral, "Invalid literal")
		return Bool(false)
	case b == 'n':
		p.expect("ull", jval.ErrInvalidLiteral, "Invalid literal")
		return Null{}
	}
	p.fail(jval.ErrInvalidLiteral, "Invalid structure or literal")
	panic("unreachable")
}

// parseObject consumes the members of an object and the closing brace.
// Precondition: the opening brace has been consumed.
func (p *Parser) parseObject(depth int) Object {
	p.c.SkipSpace()
	if b := p.next(); b == '}' {
		return Object{}
	}
	p.c.Unread()

	var o Object
	for {
		key := p.parseValue(depth + 1)
		ks, ok := AsString(key)
		if !ok {
			p.fail(jval.ErrExpectedKey, "Expected string key")
		}
		p.c.SkipSpace()
		if b := p.next(); b != ':' {
			p.fail(jval.ErrExpectedColon, "Expected ':' after key")
		}
		o = o.insert(&Member{Key: ks, Value: p.parseValue(depth + 1)})

		p.c.SkipSpace()
		switch p.next() {
		case '}':
			return o
		case ',':
		default:
			p.fail(jval.ErrExpectedCommaOrBrace, "Expected ',' or '}' after value")
		}
	}
}

// parseArray consumes the elements of an array and the closing bracket.
// Precondition: the opening bracket has been consumed.
func (p *Parser) parseArray(depth int) Array {
	p.c.SkipSpace()
	if b := p.next(); b == ']' {
		return Array{}
	}
	p.c.Unread()

	var a Array
	for {
		a = append(a, p.parseValue(depth+1))
		p.c.SkipSpace()
		switch p.next() {
		case ']':
			return a
		case ',':
		default:
			p.fail(jval.ErrExpectedCommaOrBracket, "Expected ',' or ']' after value")
		}
	}
}

// parseString consumes the body of a string and the closing quote,
// decoding escape sequences as it goes.
// Precondition: the opening quote has been consumed.
func (p *Parser) parseString() String {
	var buf []byte
	for {
		b := p.next()
		switch b {
		case '"':
			return String(buf)
		case '\n':
			p.fail(jval.ErrUnterminatedString, "Missing string termination before EOL")
		case '\\':
			switch e := p.next(); e {
			case '"', '\\', '/':
				buf = append(buf, e)
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				buf = utf8.AppendRune(buf, p.parseEscapedRune())
			default:
				p.fail(jval.ErrInvalidEscape, "Invalid escape code")
			}
		default:
			buf = append(buf, b)
		}
	}
}

// parseEscapedRune decodes the UTF-16 code unit or surrogate pair
// following a "\u" escape into a Unicode scalar.
func (p *Parser) parseEscapedRune() rune {
	high := p.readHex4()
	if high >= 0xDC00 && high <= 0xDFFF {
		p.fail(jval.ErrInvalidSurrogate, "Invalid UTF16 high surrogate")
	}
	cp := high
	if high >= 0xD800 && high <= 0xDBFF {
		p.expect(`\u`, jval.ErrInvalidSurrogate, "Expected unicode surrogate pair")
		low := p.readHex4()
		if low < 0xDC00 || low > 0xDFFF {
			p.fail(jval.ErrInvalidSurrogate, "Invalid UTF16 low surrogate")
		}
		cp = ((high - 0xD800) << 10) + (low - 0xDC00) + 0x10000
	}
	// The reference accepted codepoints up to 0x1FFFFF; this bound is the
	// true Unicode maximum.
	if cp > unicode.MaxRune {
		p.fail(jval.ErrInvalidCodepoint, "Invalid unicode codepoint")
	}
	return cp
}

// readHex4 reads exactly 4 hexadecimal digits and returns their value.
func (p *Parser) readHex4() rune {
	p.c.BeginCapture()
	for i := 0; i < 4; i++ {
		if !isHexDigit(p.next()) {
			p.fail(jval.ErrInvalidHexEscape, "Invalid hex escape code")
		}
	}
	v, err := strconv.ParseUint(p.c.EndCapture(), 16, 32)
	if err != nil {
		p.fail(jval.ErrInvalidHexEscape, "Invalid hex escape code")
	}
	return rune(v)
}

// parseNumber consumes a number literal, capturing its raw text and
// converting it to a 64-bit float. The grammar is strict: no leading
// zeroes, at least one digit after a decimal point, and at least one digit
// in an exponent. End of input is a valid terminator anywhere a
// non-digit would end the number. A literal whose magnitude exceeds the
// float64 range becomes an infinity, so the serializer's out-of-range
// infinity forms parse back to the values that produced them.
// Precondition: the leading sign or digit has been pushed back.
func (p *Parser) parseNumber() Number {
	p.c.BeginCapture()

	b := p.next()
	if b == '+' {
		p.fail(jval.ErrInvalidNumber, "Invalid number format")
	}
	if b == '-' {
		b = p.mustNext()
	}

	// Integer part: a single zero, or a nonzero digit followed by digits.
	var eof bool
	switch {
	case b == '0':
		b, eof = p.nextOrEnd()
		if !eof && isDigit(b) {
			p.fail(jval.ErrInvalidNumber, "Invalid number format")
		}
	case isDigit(b):
		b, _, eof = p.scanDigitRun()
	default:
		p.fail(jval.ErrInvalidNumber, "Invalid number format")
	}

	// Fractional part: one or more digits after the point.
	if !eof && b == '.' {
		var nr int
		b, nr, eof = p.scanDigitRun()
		if nr == 0 {
			p.fail(jval.ErrInvalidNumber, "Invalid number format")
		}
	}

	// Exponent: optional sign, then one or more digits.
	if !eof && (b == 'e' || b == 'E') {
		b = p.mustNext()
		if b == '-' || b == '+' {
			b = p.mustNext()
		}
		if !isDigit(b) {
			p.fail(jval.ErrInvalidNumber, "Invalid number format")
		}
		b, _, eof = p.scanDigitRun()
	}

	if !eof {
		p.c.Unread()
	}

	// A range error still yields the nearest representable value (an
	// infinity for overflow); the text is grammatically valid, so keep it.
	f, err := strconv.ParseFloat(p.c.EndCapture(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.fail(jval.ErrInvalidNumber, "Invalid number format")
	}
	return Number(f)
}

// mustNext returns the next input byte at a position where the number
// grammar does not permit the input to end.
func (p *Parser) mustNext() byte {
	b, ok := p.nextOK()
	if !ok {
		p.fail(jval.ErrInvalidNumber, "Invalid number format")
	}
	return b
}

// nextOrEnd returns the next input byte, or reports that the input ended.
func (p *Parser) nextOrEnd() (byte, bool) {
	b, ok := p.nextOK()
	return b, !ok
}

// scanDigitRun consumes a run of digits, returning the first non-digit
// byte, the number of digits consumed, and whether the input ended.
func (p *Parser) scanDigitRun() (byte, int, bool) {
	var nr int
	for {
		b, ok := p.nextOK()
		if !ok {
			return 0, nr, true
		}
		if !isDigit(b) {
			return b, nr, false
		}
		nr++
	}
}

func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isNumStart(b byte) bool { return b == '-' || b == '+' || isDigit(b) }

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
