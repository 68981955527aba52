// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func mustPath(t *testing.T, v jvalue.Value, path ...any) jvalue.Value {
	t.Helper()
	out, err := cursor.Path(v, path...)
	if err != nil {
		t.Fatalf("Path %+v: unexpected error: %v", path, err)
	}
	return out
}

func TestCursor(t *testing.T) {
	v, err := jvalue.Parse(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want jvalue.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},

		{"ArrayPos", []any{"list", 1},
			jvalue.Object(map[string]jvalue.Value{"x": jvalue.Int(2)}),
			false,
		},
		{"ArrayNeg", []any{"list", -2},
			jvalue.Object(map[string]jvalue.Value{"x": jvalue.Int(1)}),
			false,
		},
		{"ArrayRange", []any{"o", 25}, mustPath(t, v, "o"), true},
		{"ObjPath", []any{"xyz", "d"}, jvalue.True, false},
		{"DeepPath", []any{"list", 0, "x"}, jvalue.Int(1), false},
		{"BadElement", []any{"o", 1.5}, mustPath(t, v, "o"), true},

		{"FuncArray", []any{"o", testPathFunc}, jvalue.Int(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, jvalue.Int(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, jvalue.True, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got)
			}
		})
	}
}

func TestCursorMoves(t *testing.T) {
	v, err := jvalue.Parse(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at origin")
	}

	c.Down("list", 0, "x")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path length: got %d, want 4", got)
	}
	if got := c.Up().Value(); got.Kind() != jvalue.KindObject {
		t.Errorf("Up: got %v, want object", got.Kind())
	}

	// A failed step leaves the cursor where it stopped.
	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got nil, want error")
	}
	if got := c.Value(); got.Kind() != jvalue.KindObject {
		t.Errorf("After failure: got %v, want object", got.Kind())
	}

	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: origin %v, err %v", c.AtOrigin(), c.Err())
	}
	if diff := cmp.Diff(c.Origin(), v); diff != "" {
		t.Errorf("Origin (-got, +want):\n%s", diff)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"", nil},
		{"a", []any{"a"}},
		{"list.1.x", []any{"list", 1, "x"}},
		{"o.-1", []any{"o", -1}},
		{"a..b", []any{"a", "", "b"}},
	}
	for _, tc := range tests {
		got := cursor.ParsePath(tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParsePath(%q) (-want, +got):\n%s", tc.input, diff)
		}
	}
}

func testPathFunc(v jvalue.Value) (jvalue.Value, error) {
	switch v.Kind() {
	case jvalue.KindArray, jvalue.KindObject:
		return jvalue.Int(int64(v.Len())), nil
	default:
		return jvalue.Value{}, errors.New("not a thing with length")
	}
}
