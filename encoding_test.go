// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"testing"

	"github.com/creachadair/jvalue"
)

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\tb\n", `"a\tb\n"`},
		{`say "hi" \o/`, `"say \"hi\" \\o/"`},
		{"\x00", `"\u0000"`},
		{"héllo", `"héllo"`},
	}
	for _, tc := range tests {
		got := jvalue.Quote(tc.input)
		if got != tc.want {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.want)
		}
		dec, err := jvalue.Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", got, err)
		} else if dec != tc.input {
			t.Errorf("Unquote(%#q): got %q, want %q", got, dec, tc.input)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  jvalue.ErrorKind
	}{
		{"", jvalue.UnexpectedEndOfInput},
		{"abc", jvalue.ExpectedValue},
		{` "abc"`, jvalue.ExpectedValue},
		{`"abc`, jvalue.UnexpectedEndOfInput},
		{`"abc" `, jvalue.TrailingContent},
		{`"a\qb"`, jvalue.InvalidEscapeSequence},
		{"\"a\nb\"", jvalue.InvalidLiteralCharacter},
	}
	for _, tc := range tests {
		got, err := jvalue.Unquote(tc.input)
		if err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", tc.input, got)
		} else if kind := jvalue.KindOf(err); kind != tc.kind {
			t.Errorf("Unquote(%#q): got kind %v, want %v", tc.input, kind, tc.kind)
		}
	}
}
