// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A UTF-16
// surrogate pair written as two consecutive \u escapes is combined into a
// single rune; an unpaired surrogate is replaced by the Unicode replacement
// rune. Unquote reports an error for an incomplete or invalid escape.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}
	dec := make([]byte, 0, src.Len())
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		if b, ok := Control(c); ok {
			dec = append(dec, b)
		} else if c == 'u' {
			r, ok := Hex4(src)
			if !ok {
				return nil, errors.New("invalid Unicode escape")
			}
			src = src.SliceFrom(4)

			// A high surrogate followed by an escaped low surrogate encodes a
			// single rune outside the basic multilingual plane.
			if utf16.IsSurrogate(r) && src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
				if lo, ok := Hex4(src.SliceFrom(2)); ok {
					if pr := utf16.DecodeRune(r, lo); pr != utf8.RuneError {
						r = pr
						src = src.SliceFrom(6)
					}
				}
			}
			if utf16.IsSurrogate(r) {
				r = utf8.RuneError
			}
			dec = utf8.AppendRune(dec, r)
		} else {
			return nil, fmt.Errorf("invalid %q after escape", c)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// Control reports the byte denoted by the single-character escape \c, and
// whether c is a valid single-character escape.
func Control(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// Hex4 decodes the four hexadecimal digits at the front of src as a UTF-16
// code unit. It reports false if src has fewer than four bytes or any of them
// is not a hexadecimal digit.
func Hex4(src mem.RO) (rune, bool) {
	if src.Len() < 4 {
		return 0, false
	}
	var v rune
	for i := range 4 {
		d, ok := hexValue(src.At(i))
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool { _, ok := hexValue(b); return ok }

func hexValue(b byte) (rune, bool) {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0'), true
	case 'a' <= b && b <= 'f':
		return rune(b - 'a' + 10), true
	case 'A' <= b && b <= 'F':
		return rune(b - 'A' + 10), true
	}
	return 0, false
}
