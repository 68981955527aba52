// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a\"b", `a\"b`},
		{`a\b`, `a\\b`},
		{"\b\f\n\r\t", `\b\f\n\r\t`},
		{"\x00\x1f\x7f", `\u0000\u001f` + "\x7f"},
		{"<tag> & 'q'", "<tag> & 'q'"},
		{"héllo 世界 😀", "héllo 世界 😀"},
		{"\u2028\u2029", `\u2028\u2029`},
		{"a\xffb", `a\ufffdb`},
	}
	for _, tc := range tests {
		got := string(escape.Quote(mem.S(tc.input)))
		if got != tc.want {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{`\"\\\/`, `"\/`},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`\u0041\u00e9`, "Aé"},
		{`x\u4e16y`, "x世y"},
		{`\ud83d\ude00`, "😀"},
		{`\uD83D\uDE00!`, "😀!"},
		{`\ud83d`, "\ufffd"},
		{`\ude00`, "\ufffd"},
		{`\ud83d\u0041`, "\ufffdA"},
		{`\ud83dx`, "\ufffdx"},
	}
	for _, tc := range tests {
		got, err := escape.Unquote(mem.S(tc.input))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
		} else if string(got) != tc.want {
			t.Errorf("Unquote(%#q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, input := range []string{`\`, `abc\`, `\x`, `\u12`, `\u12g4`, `\U0041`} {
		got, err := escape.Unquote(mem.S(input))
		if err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", input, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{
		"", "plain", "tab\there", "quote\"slash\\", "\x01\x02", "😀\u2028",
	} {
		dec, err := escape.Unquote(mem.B(escape.Quote(mem.S(input))))
		if err != nil {
			t.Errorf("Unquote(Quote(%q)): unexpected error: %v", input, err)
		} else if string(dec) != input {
			t.Errorf("Unquote(Quote(%q)): got %q", input, dec)
		}
	}
}
