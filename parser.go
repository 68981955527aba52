// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/creachadair/jvalue/internal/escape"
	"github.com/shopspring/decimal"
	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is not
// positive.
const DefaultMaxDepth = 10000

// Options control the behavior of a parser. The zero value is ready for use
// and provides default settings.
type Options struct {
	// The maximum nesting depth of arrays and objects. If zero or negative,
	// DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses text as a single JSON value using default options.
func Parse(text string) (Value, error) { return Options{}.Parse(text) }

// ParseBytes parses data as a single JSON value using default options.
func ParseBytes(data []byte) (Value, error) { return Options{}.ParseBytes(data) }

// ParseReader reads all of r and parses it as a single JSON value using
// default options.
func ParseReader(r io.Reader) (Value, error) { return Options{}.ParseReader(r) }

// ParseFile reads the contents of the named file and parses it as a single
// JSON value using default options.
func ParseFile(path string) (Value, error) { return Options{}.ParseFile(path) }

// Parse parses text as a single JSON value. Whitespace before and after the
// value is ignored; any other content after the value is an error. In case of
// a syntax error, the returned error has concrete type *SyntaxError.
func (o Options) Parse(text string) (Value, error) { return o.parse(mem.S(text)) }

// ParseBytes parses data as a single JSON value, as Parse.
// The resulting value does not retain data.
func (o Options) ParseBytes(data []byte) (Value, error) { return o.parse(mem.B(data)) }

// ParseReader reads all of r and parses it as a single JSON value. If r
// cannot be read, or its contents are not valid UTF-8, the returned error
// has concrete type *IOError.
func (o Options) ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, &IOError{Err: err}
	} else if !utf8.Valid(data) {
		return Value{}, &IOError{Err: ErrInvalidUTF8}
	}
	return o.ParseBytes(data)
}

// ParseFile reads the contents of the named file and parses it as a single
// JSON value. If the file cannot be read, or its contents are not valid
// UTF-8, the returned error has concrete type *IOError.
func (o Options) ParseFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, &IOError{Path: path, Err: err}
	} else if !utf8.Valid(data) {
		return Value{}, &IOError{Path: path, Err: ErrInvalidUTF8}
	}
	return o.ParseBytes(data)
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o Options) parse(src mem.RO) (Value, error) {
	p := &parser{src: src, max: o.maxDepth()}
	p.skipSpace()
	if p.eof() {
		return Value{}, p.fail(0, UnexpectedEndOfInput, "no value in input")
	}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return Value{}, p.fail(p.pos, TrailingContent, "unexpected %s after value", p.describe())
	}
	return v, nil
}

// A parser holds the state of a single parse. The cursor pos only moves
// forward, and each parseX method is entered with pos at the first byte of
// its production.
type parser struct {
	src   mem.RO
	pos   int
	depth int
	max   int
}

func (p *parser) eof() bool { return p.pos >= p.src.Len() }

// peek returns the byte at the cursor, or 0 at the end of input.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src.At(p.pos)
}

// describe returns a human-readable label for the input at the cursor.
func (p *parser) describe() string {
	if p.eof() {
		return "end of input"
	}
	r, _ := mem.DecodeRune(p.src.SliceFrom(p.pos))
	return fmt.Sprintf("%q", r)
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.src.At(p.pos)) {
		p.pos++
	}
}

// fail constructs a *SyntaxError for a production beginning at start that
// failed at the current cursor position.
func (p *parser) fail(start int, kind ErrorKind, msg string, args ...any) error {
	return p.failAt(start, p.pos, kind, nil, msg, args...)
}

func (p *parser) failAt(start, pos int, kind ErrorKind, cause error, msg string, args ...any) error {
	return &SyntaxError{
		Kind:     kind,
		Offset:   pos,
		Location: locateSpan(p.src, Span{Pos: start, End: pos}),
		Message:  fmt.Sprintf(msg, args...),
		err:      cause,
	}
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() (Value, error) {
	switch c := p.peek(); {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == '-' || isDigit(c):
		return p.parseNumber()
	case c == 't' || c == 'f' || c == 'n':
		return p.parseLiteral()
	case p.eof():
		return Value{}, p.fail(p.pos, UnexpectedEndOfInput, "expected value")
	default:
		return Value{}, p.fail(p.pos, ExpectedValue, "unexpected %s", p.describe())
	}
}

// enter records entry into a nested array or object beginning at start.
func (p *parser) enter(start int) error {
	p.depth++
	if p.depth > p.max {
		return p.fail(start, ExceedsMaxDepth, "nesting depth exceeds %d", p.max)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseObject consumes an object and its members.
// Precondition: the cursor is at "{".
func (p *parser) parseObject() (Value, error) {
	start := p.pos
	if err := p.enter(start); err != nil {
		return Value{}, err
	}
	defer p.leave()

	p.pos++ // "{"
	p.skipSpace()
	obj := make(map[string]Value)
	if p.peek() == '}' {
		p.pos++
		return Value{kind: KindObject, obj: obj}, nil
	}
	for {
		// Parse a single member: "key": value
		switch {
		case p.eof():
			return Value{}, p.fail(start, UnexpectedEndOfInput, "unterminated object")
		case p.peek() != '"':
			return Value{}, p.fail(p.pos, ExpectedValue, "expected object key, got %s", p.describe())
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()
		if err := p.require(start, ':', "object"); err != nil {
			return Value{}, err
		}
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		obj[key] = v

		// Check whether we have more members (",") or are done ("}").
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return Value{kind: KindObject, obj: obj}, nil
		} else if err := p.require(start, ',', "object"); err != nil {
			return Value{}, err
		}
		p.skipSpace()
	}
}

// parseArray consumes an array and its elements.
// Precondition: the cursor is at "[".
func (p *parser) parseArray() (Value, error) {
	start := p.pos
	if err := p.enter(start); err != nil {
		return Value{}, err
	}
	defer p.leave()

	p.pos++ // "["
	p.skipSpace()
	arr := []Value{}
	if p.peek() == ']' {
		p.pos++
		return Value{kind: KindArray, arr: arr}, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)

		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			return Value{kind: KindArray, arr: arr}, nil
		} else if err := p.require(start, ',', "array"); err != nil {
			return Value{}, err
		}
		p.skipSpace()
	}
}

// require consumes the delimiter want, or reports an error for the enclosing
// construct beginning at start.
func (p *parser) require(start int, want byte, label string) error {
	if p.eof() {
		return p.fail(start, UnexpectedEndOfInput, "unterminated %s", label)
	} else if c := p.peek(); c != want {
		return p.fail(start, ExpectedDelimiter, "expected %q in %s, got %s", want, label, p.describe())
	}
	p.pos++
	return nil
}

// parseString consumes a quoted string and returns its decoded contents.
// Precondition: the cursor is at an opening quote.
func (p *parser) parseString() (string, error) {
	start := p.pos
	p.pos++ // open quote
	var esc bool
	for {
		if p.eof() {
			return "", p.fail(start, UnexpectedEndOfInput, "unterminated string")
		}
		switch c := p.src.At(p.pos); {
		case c == '"':
			body := p.src.SliceFrom(start + 1).SliceTo(p.pos - start - 1)
			p.pos++
			if !esc {
				return body.StringCopy(), nil
			}
			dec, err := escape.Unquote(body)
			if err != nil {
				return "", p.failAt(start, p.pos, InvalidEscapeSequence, err, "invalid string")
			}
			return string(dec), nil

		case c == '\\':
			if err := p.scanEscape(start); err != nil {
				return "", err
			}
			esc = true

		case c < ' ':
			return "", p.fail(start, InvalidLiteralCharacter, "unescaped control %q in string", c)

		case c >= utf8.RuneSelf:
			r, n := mem.DecodeRune(p.src.SliceFrom(p.pos))
			if r == utf8.RuneError && n <= 1 {
				return "", p.fail(start, InvalidLiteralCharacter, "invalid UTF-8 in string")
			}
			p.pos += n

		default:
			p.pos++
		}
	}
}

// scanEscape checks the escape sequence at the cursor and advances past it.
// Precondition: the cursor is at "\".
func (p *parser) scanEscape(start int) error {
	p.pos++ // "\"
	if p.eof() {
		return p.fail(start, UnexpectedEndOfInput, "incomplete escape sequence")
	}
	c := p.src.At(p.pos)
	if _, ok := escape.Control(c); ok {
		p.pos++
		return nil
	} else if c != 'u' {
		return p.fail(start, InvalidEscapeSequence, "invalid %s after escape", p.describe())
	}
	p.pos++ // "u"
	for range 4 {
		if p.eof() {
			return p.fail(start, UnexpectedEndOfInput, "incomplete Unicode escape")
		} else if !escape.IsHexDigit(p.src.At(p.pos)) {
			return p.fail(start, InvalidEscapeSequence, "invalid Unicode escape: not a hex digit: %s", p.describe())
		}
		p.pos++
	}
	return nil
}

// parseNumber consumes a number and selects its representation.
// Precondition: the cursor is at "-" or a digit.
func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	if p.peek() == '-' {
		// If there is a leading sign, we need at least one digit.
		p.pos++
		if !isDigit(p.peek()) {
			return Value{}, p.fail(start, InvalidNumber, "want digit after sign, got %s", p.describe())
		}
	}

	// Integer part: "0" alone, or a non-zero digit followed by digits.
	if p.peek() == '0' {
		p.pos++
		if isDigit(p.peek()) {
			return Value{}, p.fail(start, InvalidNumber, "extra leading zeroes")
		}
	} else {
		p.skipDigits()
	}

	var isFloat bool
	if p.peek() == '.' {
		p.pos++
		if p.skipDigits() == 0 {
			return Value{}, p.fail(start, InvalidNumber, "no digits after decimal point")
		}
		isFloat = true
	}

	if c := p.peek(); c == 'e' || c == 'E' {
		p.pos++
		if c := p.peek(); c == '+' || c == '-' {
			p.pos++
		}
		if p.skipDigits() == 0 {
			if p.eof() {
				return Value{}, p.fail(start, UnexpectedEndOfInput, "missing exponent digits")
			}
			return Value{}, p.fail(start, InvalidNumber, "missing exponent digits, got %s", p.describe())
		}
		isFloat = true
	}

	text := p.src.SliceFrom(start).SliceTo(p.pos - start)
	if isFloat {
		return p.decimalValue(start, text)
	}
	return p.integerValue(start, text)
}

// integerValue converts the text of an integer literal, falling back to an
// arbitrary-precision integer if it does not fit in an int64.
func (p *parser) integerValue(start int, text mem.RO) (Value, error) {
	s := text.StringCopy()
	if z, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(z), nil
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Value{}, p.fail(start, InvalidNumber, "invalid integer %q", s)
	}
	return Value{kind: KindNumber, num: Number{repr: ReprBigInt, z: z}}, nil
}

// decimalValue converts the text of a number with a fraction or exponent,
// falling back to an arbitrary-precision decimal if the value overflows a
// float64, or if a non-zero value underflows to zero.
func (p *parser) decimalValue(start int, text mem.RO) (Value, error) {
	s := text.StringCopy()
	f, err := strconv.ParseFloat(s, 64)
	if err == nil && (f != 0 || !hasNonZeroMantissa(text)) {
		return Float(f), nil
	}
	d, derr := decimal.NewFromString(s)
	if derr != nil {
		return Value{}, p.failAt(start, p.pos, InvalidNumber, errors.Join(err, derr),
			"number %q out of range", s)
	}
	return Decimal(d), nil
}

// skipDigits advances the cursor over decimal digits, and reports how many
// were consumed.
func (p *parser) skipDigits() int {
	n := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	return p.pos - n
}

// parseLiteral consumes one of the constants true, false, or null. The whole
// run of letters at the cursor must match, so that "truee" is rejected rather
// than read as "true" followed by other input.
// Precondition: the cursor is at "t", "f", or "n".
func (p *parser) parseLiteral() (Value, error) {
	start := p.pos
	for isNameByte(p.peek()) {
		p.pos++
	}
	name := p.src.SliceFrom(start).SliceTo(p.pos - start)
	switch {
	case name.Equal(litTrue):
		return True, nil
	case name.Equal(litFalse):
		return False, nil
	case name.Equal(litNull):
		return Null, nil
	}
	return Value{}, p.fail(start, InvalidLiteral, "unknown constant %q", name.StringCopy())
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

func isSpace(c byte) bool    { return c == ' ' || c == '\r' || c == '\n' || c == '\t' }
func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isNameByte(c byte) bool { return 'a' <= c && c <= 'z' }

// hasNonZeroMantissa reports whether the digits of a number literal before
// its exponent include any non-zero digit.
func hasNonZeroMantissa(text mem.RO) bool {
	for i := 0; i < text.Len(); i++ {
		switch c := text.At(i); {
		case c == 'e' || c == 'E':
			return false
		case '1' <= c && c <= '9':
			return true
		}
	}
	return false
}
