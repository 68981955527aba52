// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a parser for JSON text that constructs an
// immutable tree of typed values.
//
// # Parsing
//
// Call Parse to parse a string containing exactly one JSON value. Whitespace
// before and after the value is ignored; any other trailing content is an
// error:
//
//	v, err := jvalue.Parse(`{"name": "Dennis", "age": 37}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// ParseBytes, ParseReader, and ParseFile accept other sources of input. The
// Options type carries settings such as the maximum nesting depth, and has
// methods corresponding to each of the package-level functions.
//
// # Values
//
// A Value holds one of the JSON kinds: null, bool, number, string, array, or
// object. The Kind method reports which. Accessors narrow a value to its
// payload, and report an error of concrete type *TypeError if the value has
// a different kind:
//
//	age, err := obj.AsNumber()
//	if errors.Is(err, jvalue.TypeMismatch) {
//	   log.Printf("Age is not a number: %v", err)
//	}
//
// Values are never modified once constructed. Accessors that return slices
// or maps return copies.
//
// # Numbers
//
// A number without a fraction or exponent is an integer: it is stored as an
// int64 if it fits, and otherwise as a *big.Int. Other numbers are stored as a
// float64 if possible, and otherwise as a decimal.Decimal. Two numbers are
// equal only if they use the same representation and have the same value.
//
// # Errors
//
// Errors from this package report an ErrorKind, which may be tested with
// errors.Is or recovered with KindOf:
//
//	Kind                     | Concrete type  | Cause
//	------------------------ | -------------- | -------------------------------
//	ExpectedValue, ...       | *SyntaxError   | malformed input text
//	TypeMismatch             | *TypeError     | accessor applied to wrong kind
//	IOFailure                | *IOError       | input could not be read
//	IndexOutOfRange          | *RangeError    | array offset outside the array
//
// KindOf reports NoError for errors that do not come from this package.
//
// A *SyntaxError records the byte offset at which the problem was detected,
// and the line and column of that offset.
package jvalue
