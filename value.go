// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"
	"iter"
	"maps"
	"math/big"
	"slices"
	"strings"

	"github.com/creachadair/jvalue/internal/escape"
	"github.com/shopspring/decimal"
	"go4.org/mem"
)

// Kind is the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindNull   Kind = iota // null
	KindBool               // true, false
	KindNumber             // integer or decimal number
	KindString             // quoted string
	KindArray              // [ ... ]
	KindObject             // { ... }
)

var kindName = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindName) {
		return "invalid kind"
	}
	return kindName[v]
}

// A Value is an immutable JSON value. The zero Value is null.
//
// The variant held by a Value is reported by its Kind method. The payload is
// retrieved with the accessor matching the kind (AsBool, AsNumber, and so on);
// an accessor applied to the wrong kind reports a *TypeError.
type Value struct {
	kind Kind
	flag bool
	num  Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// Interned constant values.
var (
	Null  = Value{kind: KindNull}
	True  = Value{kind: KindBool, flag: true}
	False = Value{kind: KindBool, flag: false}
)

// Bool returns a Boolean value.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer value.
func Int(z int64) Value { return NumberValue(IntNumber(z)) }

// Float returns a floating-point value. It panics if f is infinite or NaN.
func Float(f float64) Value { return NumberValue(FloatNumber(f)) }

// BigInt returns an arbitrary-precision integer value.
func BigInt(z *big.Int) Value { return NumberValue(BigIntNumber(z)) }

// Decimal returns an arbitrary-precision decimal value.
func Decimal(d decimal.Decimal) Value { return NumberValue(DecimalNumber(d)) }

// NumberValue returns a number value.
func NumberValue(n Number) Value { return Value{kind: KindNumber, num: n} }

// Array returns an array value containing vs in order.
func Array(vs ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(vs)}
}

// Object returns an object value with the members of m.
func Object(m map[string]Value) Value {
	obj := maps.Clone(m)
	if obj == nil {
		obj = make(map[string]Value)
	}
	return Value{kind: KindObject, obj: obj}
}

// From converts a string, integer, float, bool, nil, *big.Int, Number,
// decimal.Decimal, Value, []Value, or map[string]Value into a Value. It
// panics if v does not have one of those types.
func From(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case *big.Int:
		return BigInt(t)
	case decimal.Decimal:
		return Decimal(t)
	case Number:
		return NumberValue(t)
	case []Value:
		return Array(t...)
	case map[string]Value:
		return Object(t)
	default:
		panic(fmt.Sprintf("jvalue: unsupported value type %T", v))
	}
}

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) check(want Kind) error {
	if v.kind != want {
		return &TypeError{Want: want, Got: v.kind}
	}
	return nil
}

// AsNull reports a *TypeError if v is not null, otherwise nil.
func (v Value) AsNull() error { return v.check(KindNull) }

// AsBool returns the Boolean payload of v.
func (v Value) AsBool() (bool, error) { return v.flag, v.check(KindBool) }

// AsNumber returns the number payload of v.
func (v Value) AsNumber() (Number, error) {
	if err := v.check(KindNumber); err != nil {
		return Number{}, err
	}
	return v.num, nil
}

// AsString returns the string payload of v.
func (v Value) AsString() (string, error) {
	if err := v.check(KindString); err != nil {
		return "", err
	}
	return v.str, nil
}

// AsArray returns a copy of the elements of v.
func (v Value) AsArray() ([]Value, error) {
	if err := v.check(KindArray); err != nil {
		return nil, err
	}
	return slices.Clone(v.arr), nil
}

// AsObject returns a copy of the members of v.
func (v Value) AsObject() (map[string]Value, error) {
	if err := v.check(KindObject); err != nil {
		return nil, err
	}
	return maps.Clone(v.obj), nil
}

// Len reports the number of elements in an array or members in an object.
// It returns 0 for all other kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Index returns the element at offset i of an array. If i is out of range,
// the error has concrete type *RangeError.
func (v Value) Index(i int) (Value, error) {
	if err := v.check(KindArray); err != nil {
		return Value{}, err
	} else if i < 0 || i >= len(v.arr) {
		return Value{}, &RangeError{Index: i, Len: len(v.arr)}
	}
	return v.arr[i], nil
}

// Get returns the member of an object with the given key, and reports
// whether it was present. Get reports false if v is not an object.
func (v Value) Get(key string) (Value, bool) {
	m, ok := v.obj[key]
	return m, ok
}

// Keys returns the keys of an object in sorted order, or nil if v is not an
// object.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Elements returns an iterator over the offsets and elements of an array.
// The sequence is empty if v is not an array.
func (v Value) Elements() iter.Seq2[int, Value] { return slices.All(v.arr) }

// Members returns an iterator over the members of an object in sorted key
// order. The sequence is empty if v is not an object.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range v.Keys() {
			if !yield(key, v.obj[key]) {
				return
			}
		}
	}
}

// Equal reports whether v and w have the same kind and equal payloads.
// Numbers must have the same representation as well as the same value, so
// Int(2) and Float(2) are not equal.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.flag == w.flag
	case KindNumber:
		return v.num.Equal(w.num)
	case KindString:
		return v.str == w.str
	case KindArray:
		return slices.EqualFunc(v.arr, w.arr, Value.Equal)
	case KindObject:
		return maps.EqualFunc(v.obj, w.obj, Value.Equal)
	}
	return false
}

// String renders v as compact JSON text. Object members are written in
// sorted key order.
func (v Value) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v Value) writeTo(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.flag {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.num.String())
	case KindString:
		writeQuoted(sb, v.str)
	case KindArray:
		sb.WriteByte('[')
		for i, elt := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			elt.writeTo(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeQuoted(sb, key)
			sb.WriteByte(':')
			v.obj[key].writeTo(sb)
		}
		sb.WriteByte('}')
	}
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	sb.Write(escape.Quote(mem.S(s)))
	sb.WriteByte('"')
}
