// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"github.com/creachadair/jvalue/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	return string(append(buf, '"'))
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// The input must consist of exactly one string literal, without surrounding
// whitespace. Errors are reported as for Parse.
func Unquote(src string) (string, error) {
	p := &parser{src: mem.S(src), max: 1}
	if p.peek() != '"' {
		if p.eof() {
			return "", p.fail(0, UnexpectedEndOfInput, "missing string")
		}
		return "", p.fail(0, ExpectedValue, "unexpected %s, want string", p.describe())
	}
	s, err := p.parseString()
	if err != nil {
		return "", err
	} else if !p.eof() {
		return "", p.fail(p.pos, TrailingContent, "unexpected %s after string", p.describe())
	}
	return s, nil
}
