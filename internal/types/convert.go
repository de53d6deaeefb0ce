package types

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the primitive type a cell was coerced to.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is a single CSV cell with its raw text and coerced primitive.
// Raw is kept so that a form type such as "4" can still be compared as text.
type Value struct {
	Raw   string
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
}

// numericPattern matches plain decimal numbers, optionally with an exponent.
// Hex, "NaN" and "Inf" are left as strings.
var numericPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// ParseValue coerces a raw cell into its natural primitive type: integer when
// the text is fully an integer, float when fully numeric, bool for
// true/false, null when empty, string otherwise.
func ParseValue(raw string) Value {
	v := Value{Raw: raw, Kind: KindString}
	s := strings.TrimSpace(raw)

	switch {
	case s == "":
		v.Kind = KindNull
	case s == "true" || s == "TRUE" || s == "True":
		v.Kind, v.Bool = KindBool, true
	case s == "false" || s == "FALSE" || s == "False":
		v.Kind = KindBool
	case numericPattern.MatchString(s):
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			v.Kind, v.Int, v.Float = KindInt, i, float64(i)
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			v.Kind, v.Float = KindFloat, f
			if inInt64Range(f) {
				v.Int = int64(f)
			}
		}
	}

	return v
}

// String returns the raw cell text.
func (v Value) String() string {
	return v.Raw
}

// IsNumeric reports whether the cell was coerced to an int or float.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// inInt64Range reports whether f truncates to an int64 without overflow.
// 2^63 is exactly representable, so the upper bound is exclusive.
func inInt64Range(f float64) bool {
	return f >= math.MinInt64 && f < math.MaxInt64
}

// ToInt64 converts a Value to int64. Floats are truncated; non-numeric
// values and floats outside the int64 range return 0 and false.
func ToInt64(v Value) (int64, bool) {
	switch v.Kind {
	case KindInt:
		return v.Int, true
	case KindFloat:
		if !inInt64Range(v.Float) {
			return 0, false
		}
		return int64(v.Float), true
	default:
		return 0, false
	}
}

// ToFloat64 converts a Value to float64. Non-numeric values return 0 and false.
func ToFloat64(v Value) (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}
