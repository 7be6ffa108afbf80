package tree

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

type scalarKind uint8

const (
	noScalar scalarKind = iota
	textScalar
	numberScalar
)

// Scalar is a string or a number. Identifiers, attribute values and text
// values of nodes are scalars. The zero value is an absent scalar.
type Scalar struct {
	kind scalarKind
	text string
	num  float64
}

// Text creates a string scalar.
func Text(s string) Scalar {
	return Scalar{kind: textScalar, text: s}
}

// Number creates a numeric scalar.
func Number(x float64) Scalar {
	return Scalar{kind: numberScalar, num: x}
}

// ScalarOf creates a scalar from a Go value. Strings yield string scalars,
// integer and floating point types yield numbers, booleans yield "true" or
// "false", nil yields an absent scalar. Other values are formatted with %v.
func ScalarOf(v interface{}) Scalar {
	switch x := v.(type) {
	case nil:
		return Scalar{}
	case Scalar:
		return x
	case string:
		return Text(x)
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case bool:
		return Text(strconv.FormatBool(x))
	case fmt.Stringer:
		return Text(x.String())
	}
	return Text(fmt.Sprintf("%v", v))
}

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixLiteral   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// Coerce converts a string into a scalar, applying best-effort numeric
// coercion: a string which as a whole reads as a finite number becomes a
// number, everything else stays a string. "42" becomes 42, "4 2", "abc" and
// "" stay strings.
//
// Numbers are decimal literals with optional fraction and exponent, or
// unsigned integer literals with prefix 0x, 0o or 0b ("0x1F" becomes 31).
// Digit separators ("1_0") and hexadecimal floats are not numbers.
func Coerce(s string) Scalar {
	lit := strings.TrimSpace(s)
	switch {
	case decimalLiteral.MatchString(lit):
		x, err := strconv.ParseFloat(lit, 64)
		if err != nil || math.IsInf(x, 0) {
			return Text(s)
		}
		return Number(x)
	case radixLiteral.MatchString(lit):
		base := map[byte]int{'x': 16, 'o': 8, 'b': 2}[lit[1]|0x20]
		i, ok := new(big.Int).SetString(lit[2:], base)
		if !ok {
			return Text(s)
		}
		x, _ := new(big.Float).SetInt(i).Float64()
		if math.IsInf(x, 0) {
			return Text(s)
		}
		return Number(x)
	}
	return Text(s)
}

// IsSet is false for the zero value.
func (s Scalar) IsSet() bool {
	return s.kind != noScalar
}

// IsNumber is true for numeric scalars.
func (s Scalar) IsNumber() bool {
	return s.kind == numberScalar
}

// Float returns the numeric value and true for numbers.
func (s Scalar) Float() (float64, bool) {
	return s.num, s.kind == numberScalar
}

// Truthy is false for absent scalars, empty strings and zero.
func (s Scalar) Truthy() bool {
	switch s.kind {
	case textScalar:
		return s.text != ""
	case numberScalar:
		return s.num != 0
	}
	return false
}

// String formats a scalar the way it is written into an attribute. Numbers
// use the shortest representation ("5", "2.5"), switching to exponent
// notation for magnitudes from 1e21 on and below 1e-6 ("1e+21", "1.5e-7").
func (s Scalar) String() string {
	switch s.kind {
	case textScalar:
		return s.text
	case numberScalar:
		return formatNumber(s.num)
	}
	return ""
}

func formatNumber(x float64) string {
	if x == 0 {
		return "0" // also for negative zero
	}
	if a := math.Abs(x); a >= 1e21 || a < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Matches compares a scalar to a selector string loosely: a string scalar
// matches an identical selector, a number matches a selector which reads as
// the same number ("5" and "5.0" both match 5). Absent scalars match nothing.
func (s Scalar) Matches(selector string) bool {
	switch s.kind {
	case textScalar:
		return s.text == selector
	case numberScalar:
		if x, ok := Coerce(selector).Float(); ok {
			return x == s.num
		}
	}
	return false
}

// Equal compares two scalars by kind and value.
func (s Scalar) Equal(other Scalar) bool {
	return s == other
}
