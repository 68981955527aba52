// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Repr identifies which representation a Number uses.
type Repr byte

// Constants defining the valid Repr values.
const (
	ReprInt64   Repr = iota // 64-bit signed integer
	ReprBigInt              // arbitrary-precision integer
	ReprFloat64             // 64-bit binary floating point
	ReprDecimal             // arbitrary-precision decimal
)

var reprStr = [...]string{
	ReprInt64:   "int64",
	ReprBigInt:  "big.Int",
	ReprFloat64: "float64",
	ReprDecimal: "decimal",
}

func (r Repr) String() string {
	v := int(r)
	if v >= len(reprStr) {
		return "invalid repr"
	}
	return reprStr[v]
}

// A Number is a JSON number. A number parsed without a fraction or exponent
// is an integer, represented as an int64 if it fits and otherwise as a
// big.Int. Any other number is represented as a float64 if possible and
// otherwise as a decimal. The zero Number is the integer 0.
type Number struct {
	repr Repr
	i    int64
	f    float64
	z    *big.Int
	d    decimal.Decimal
}

// IntNumber returns a Number for the integer v.
func IntNumber(v int64) Number { return Number{repr: ReprInt64, i: v} }

// FloatNumber returns a Number for the floating-point value v.
// It panics if v is infinite or NaN, which JSON cannot represent.
func FloatNumber(v float64) Number {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		panic("jvalue: invalid float value " + strconv.FormatFloat(v, 'g', -1, 64))
	}
	return Number{repr: ReprFloat64, f: v}
}

// BigIntNumber returns a Number for the integer z. If z fits in an int64,
// the result has representation ReprInt64. The caller's z is not retained.
func BigIntNumber(z *big.Int) Number {
	if z.IsInt64() {
		return IntNumber(z.Int64())
	}
	return Number{repr: ReprBigInt, z: new(big.Int).Set(z)}
}

// DecimalNumber returns a Number for the decimal value d.
func DecimalNumber(d decimal.Decimal) Number { return Number{repr: ReprDecimal, d: d} }

// Repr reports which representation n uses.
func (n Number) Repr() Repr { return n.repr }

// IsInteger reports whether n has an integer representation.
func (n Number) IsInteger() bool { return n.repr == ReprInt64 || n.repr == ReprBigInt }

// Int64 reports the value of n as an int64, and whether n has representation
// ReprInt64.
func (n Number) Int64() (int64, bool) { return n.i, n.repr == ReprInt64 }

// BigInt returns a copy of the value of n as a big.Int. If n is not an
// integer, BigInt returns nil.
func (n Number) BigInt() *big.Int {
	switch n.repr {
	case ReprInt64:
		return big.NewInt(n.i)
	case ReprBigInt:
		return new(big.Int).Set(n.z)
	}
	return nil
}

// Float64 returns the float64 value nearest to n. Values too large in
// magnitude to represent are reported as ±Inf.
func (n Number) Float64() float64 {
	switch n.repr {
	case ReprInt64:
		return float64(n.i)
	case ReprBigInt:
		f, _ := new(big.Float).SetInt(n.z).Float64()
		return f
	case ReprFloat64:
		return n.f
	default:
		return decimalFloat64(n.d)
	}
}

// Limits on the adjusted exponent of a decimal outside of which its float64
// value is ±Inf or zero.
const (
	maxFloatExp = 308
	minFloatExp = -324
)

// decimalFloat64 converts d to the nearest float64, without expanding
// exponents that are far outside the float64 range.
func decimalFloat64(d decimal.Decimal) float64 {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return 0
	}
	adj := int64(d.Exponent()) + int64(len(coef.Text(10))) - 1
	if coef.Sign() < 0 {
		adj-- // for the sign
	}
	switch {
	case adj > maxFloatExp:
		return math.Inf(coef.Sign())
	case adj < minFloatExp:
		return math.Copysign(0, float64(coef.Sign()))
	}
	f, _ := d.Float64()
	return f
}

// Decimal returns the value of n as a decimal. The result is exact except
// for ReprFloat64, where it is the shortest decimal that round-trips.
func (n Number) Decimal() decimal.Decimal {
	switch n.repr {
	case ReprInt64:
		return decimal.NewFromInt(n.i)
	case ReprBigInt:
		return decimal.NewFromBigInt(n.z, 0)
	case ReprFloat64:
		return decimal.NewFromFloat(n.f)
	default:
		return n.d
	}
}

// Equal reports whether n and m have the same representation and the same
// numeric value.
func (n Number) Equal(m Number) bool {
	if n.repr != m.repr {
		return false
	}
	switch n.repr {
	case ReprInt64:
		return n.i == m.i
	case ReprBigInt:
		return n.z.Cmp(m.z) == 0
	case ReprFloat64:
		return n.f == m.f
	default:
		nc, ne := normalize(n.d)
		mc, me := normalize(m.d)
		return ne == me && nc.Cmp(mc) == 0
	}
}

// normalize returns the coefficient and exponent of d with trailing zeroes
// removed from the coefficient. Zero normalizes to (0, 0).
func normalize(d decimal.Decimal) (*big.Int, int64) {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return coef, 0
	}
	text := coef.Text(10)
	trim := strings.TrimRight(text, "0")
	exp := int64(d.Exponent()) + int64(len(text)-len(trim))
	if len(trim) != len(text) {
		coef.SetString(trim, 10)
	}
	return coef, exp
}

// String renders n as JSON number text. Non-integer values are always
// rendered with a fraction or an exponent.
func (n Number) String() string {
	switch n.repr {
	case ReprInt64:
		return strconv.FormatInt(n.i, 10)
	case ReprBigInt:
		return n.z.String()
	case ReprFloat64:
		return withPoint(strconv.FormatFloat(n.f, 'g', -1, 64))
	default:
		if exp := n.d.Exponent(); exp > 0 || exp < -maxFracDigits {
			return n.d.Coefficient().String() + "e" + strconv.Itoa(int(exp))
		}
		return withPoint(n.d.String())
	}
}

// Decimals whose exponent is below -maxFracDigits are rendered in exponent
// form rather than with an expanded fraction.
const maxFracDigits = 100

// withPoint adds a fraction to s if it would otherwise read as an integer.
func withPoint(s string) string {
	if strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
