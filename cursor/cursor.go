// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a JSON value.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jvalue"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path(v jvalue.Value, path ...any) (jvalue.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return jvalue.Value{}, err
	}
	return c.Value(), nil
}

// ParsePath splits a dotted path string such as "list.1.name" into path
// elements suitable for Down. Segments that parse as decimal integers become
// array indices; all other segments are object keys. An empty string yields
// an empty path.
func ParsePath(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	path := make([]any, len(parts))
	for i, part := range parts {
		if n, err := strconv.Atoi(part); err == nil {
			path[i] = n
		} else {
			path[i] = part
		}
	}
	return path
}

// A Cursor is a pointer that navigates into the structure of a jvalue.Value.
type Cursor struct {
	org jvalue.Value
	stk []jvalue.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin jvalue.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() jvalue.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() jvalue.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []jvalue.Value {
	return append([]jvalue.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays), or functions (see below).
// If the path cannot be completely consumed, traversal stops at the last
// value reached and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves the member with that key.
//
// If a path element is an integer, the corresponding value must be an array,
// and the integer resolves to an offset in the array. Negative offsets count
// backward from the end (-1 is last, -2 second last). An error is reported if
// the offset is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(jvalue.Value) (jvalue.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.Kind() != jvalue.KindObject {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), t)
			}
			next, ok := cur.Get(t)
			if !ok {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(next)

		case int:
			if cur.Kind() != jvalue.KindArray {
				return c.setErrorf("cannot traverse %v with %d", cur.Kind(), t)
			}
			i, ok := fixArrayBound(cur.Len(), t)
			if !ok {
				return c.setErrorf("array index %d out of bounds (n=%d)", t, cur.Len())
			}
			next, err := cur.Index(i)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case func(jvalue.Value) (jvalue.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v jvalue.Value) jvalue.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
