// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

var interopInputs = []string{
	`null`,
	`true`,
	`-0.5e-3`,
	`"\u00e9\ud83d\ude00\n"`,
	`[1, 2.5, "three", [false], {}]`,
	`{"name": "Dennis", "age": 37, "tags": ["a", "b"], "addr": {"zip": null}}`,
	`{"big": 123456789012345678901234567890, "small": -9223372036854775808}`,
	`[[[[[[[[[[]]]]]]]]]]`,
	`{"": {"": [""]}}`,
}

// fromDecoded converts the output of a JSON decoder into a Value. Number
// literals are re-parsed so that they select the same representation.
func fromDecoded(t *testing.T, v any) jvalue.Value {
	t.Helper()
	switch x := v.(type) {
	case nil, bool, string:
		return jvalue.From(x)
	case json.Number:
		return mustParse(t, string(x))
	case []any:
		out := make([]jvalue.Value, len(x))
		for i, elt := range x {
			out[i] = fromDecoded(t, elt)
		}
		return jvalue.Array(out...)
	case map[string]any:
		out := make(map[string]jvalue.Value, len(x))
		for key, elt := range x {
			out[key] = fromDecoded(t, elt)
		}
		return jvalue.Object(out)
	default:
		t.Fatalf("Unexpected decoded type %T", v)
		panic("unreachable")
	}
}

func TestAgreesWithDecoder(t *testing.T) {
	for i, input := range interopInputs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			dec := json.NewDecoder(strings.NewReader(input))
			dec.UseNumber()
			var std any
			if err := dec.Decode(&std); err != nil {
				t.Fatalf("Decode %#q: %v", input, err)
			}

			got := mustParse(t, input)
			if diff := cmp.Diff(fromDecoded(t, std), got); diff != "" {
				t.Errorf("Parse %#q (-decoder, +parse):\n%s", input, diff)
			}

			// The rendered text is valid JSON with the same meaning.
			text := got.String()
			if !json.Valid([]byte(text)) {
				t.Errorf("String %#q is not valid JSON", text)
			}
		})
	}
}

func TestRejectsExtensions(t *testing.T) {
	// Inputs accepted by the extended syntax, but not by standard JSON.
	tests := []struct {
		input string
		kind  jvalue.ErrorKind
	}{
		{"// comment\n{\"a\": 1}", jvalue.ExpectedValue},
		{`{"a": 1, /* block */ "b": 2}`, jvalue.ExpectedValue},
		{`[1, 2, 3,]`, jvalue.ExpectedValue},
		{`{"a": true,}`, jvalue.ExpectedValue},
	}
	for _, tc := range tests {
		_, err := jvalue.Parse(tc.input)
		if got := jvalue.KindOf(err); got != tc.kind {
			t.Errorf("Parse %#q: got %v (%v), want %v", tc.input, got, err, tc.kind)
		}

		// Once standardized, the input is accepted, and agrees with the
		// standard decoder.
		std, err := hujson.Standardize([]byte(tc.input))
		if err != nil {
			t.Fatalf("Standardize %#q: %v", tc.input, err)
		}
		v, err := jvalue.ParseBytes(std)
		if err != nil {
			t.Errorf("Parse standardized %#q: unexpected error: %v", std, err)
			continue
		}
		var dv any
		if err := json.Unmarshal(std, &dv); err != nil {
			t.Fatalf("Unmarshal %#q: %v", std, err)
		}
		if got, want := v.Len(), lenOf(dv); got != want {
			t.Errorf("Parse standardized %#q: got length %d, want %d", std, got, want)
		}
	}
}

func lenOf(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	}
	return 0
}
