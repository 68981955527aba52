// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by this package. An ErrorKind is
// itself an error, so that callers may use errors.Is to test the kind of an
// error returned by a parser or an accessor:
//
//	if errors.Is(err, jvalue.TrailingContent) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	NoError                 ErrorKind = iota // no error
	ExpectedValue                            // no value can start here
	UnexpectedEndOfInput                     // input ended inside a construct
	InvalidNumber                            // malformed number
	InvalidEscapeSequence                    // bad escape in a string
	InvalidLiteralCharacter                  // unescaped control or invalid UTF-8 in a string
	InvalidLiteral                           // not exactly true, false, or null
	ExpectedDelimiter                        // missing ":", ",", "]", or "}"
	TrailingContent                          // extra input after the value
	TypeMismatch                             // accessor applied to the wrong kind
	IOFailure                                // input could not be read or decoded
	ExceedsMaxDepth                          // nesting deeper than the limit
	IndexOutOfRange                          // array offset outside the array
)

var kindStr = [...]string{
	NoError:                 "no error",
	ExpectedValue:           "expected value",
	UnexpectedEndOfInput:    "unexpected end of input",
	InvalidNumber:           "invalid number",
	InvalidEscapeSequence:   "invalid escape sequence",
	InvalidLiteralCharacter: "invalid literal character",
	InvalidLiteral:          "invalid literal",
	ExpectedDelimiter:       "expected delimiter",
	TrailingContent:         "trailing content",
	TypeMismatch:            "type mismatch",
	IOFailure:               "I/O failure",
	ExceedsMaxDepth:         "exceeds maximum depth",
	IndexOutOfRange:         "index out of range",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return fmt.Sprintf("error kind %d", v)
	}
	return kindStr[v]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// IsSyntax reports whether k is a kind reported for malformed input text.
func (k ErrorKind) IsSyntax() bool {
	switch k {
	case NoError, TypeMismatch, IOFailure, IndexOutOfRange:
		return false
	}
	return int(k) < len(kindStr)
}

// KindOf reports the ErrorKind of err. It returns NoError if err == nil or
// if err does not carry a kind from this package.
func KindOf(err error) ErrorKind {
	var k ErrorKind
	errors.As(err, &k)
	return k
}

// SyntaxError is the concrete type of errors reported for malformed input.
type SyntaxError struct {
	Kind ErrorKind

	// Offset is the byte offset in the input where the error was detected.
	Offset int

	// Location spans from the start of the innermost production that failed
	// to the point where the error was detected.
	Location Location

	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s (offset %d): %s: %s", s.Location.Last, s.Offset, s.Kind, s.Message)
}

// Unwrap supports error wrapping. It reports the kind of s, along with the
// underlying cause if there is one.
func (s *SyntaxError) Unwrap() []error {
	if s.err != nil {
		return []error{s.Kind, s.err}
	}
	return []error{s.Kind}
}

// ErrInvalidUTF8 is reported, wrapped in an *IOError, when the contents of an
// input file or reader are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// IOError is the concrete type of errors reported when input could not be
// read or decoded. Its kind is IOFailure.
type IOError struct {
	Path string // the file path, if known
	Err  error  // the underlying error
}

// Error satisfies the error interface.
func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read input: %v", e.Err)
	}
	return fmt.Sprintf("read %q: %v", e.Path, e.Err)
}

// Unwrap supports error wrapping.
func (e *IOError) Unwrap() []error { return []error{IOFailure, e.Err} }

// TypeError is the concrete type of errors reported by the accessor methods
// of a Value when applied to a value of the wrong kind. Its kind is
// TypeMismatch.
type TypeError struct {
	Want, Got Kind
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch: got %v, want %v", e.Got, e.Want)
}

// Unwrap supports error wrapping.
func (e *TypeError) Unwrap() error { return TypeMismatch }

// RangeError is the concrete type of errors reported by Value.Index for an
// offset outside the array. Its kind is IndexOutOfRange.
type RangeError struct {
	Index, Len int
}

// Error satisfies the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("index %d out of range (n=%d)", e.Index, e.Len)
}

// Unwrap supports error wrapping.
func (e *RangeError) Unwrap() error { return IndexOutOfRange }
