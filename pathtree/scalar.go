package pathtree

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Scalar is a leaf value: a string, a bool or a number.
// The zero Scalar is the empty string.
type Scalar struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// StringValue returns a string Scalar.
func StringValue(s string) Scalar {
	return Scalar{kind: KindString, str: s}
}

// BoolValue returns a bool Scalar.
func BoolValue(b bool) Scalar {
	return Scalar{kind: KindBool, b: b}
}

// NumberValue returns a number Scalar.
func NumberValue(f float64) Scalar {
	return Scalar{kind: KindNumber, num: f}
}

// FiniteNumber returns a number Scalar, or ErrNotScalar for NaN and
// infinities, which JSON cannot represent.
func FiniteNumber(f float64) (Scalar, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Scalar{}, fmt.Errorf("%w: non-finite number %v", ErrNotScalar, f)
	}

	return NumberValue(f), nil
}

// ParseNumber parses text as a finite number.
func ParseNumber(text string) (Scalar, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrNotScalar, err)
	}

	return FiniteNumber(f)
}

// ParseScalar converts a decoded value into a Scalar.
// Strings, bools and every Go integer and float kind are accepted; anything
// else, including nil, maps, slices, NaN and infinities, yields ErrNotScalar.
func ParseScalar(v any) (Scalar, error) {
	switch x := v.(type) {
	case Scalar:
		return x, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case int:
		return NumberValue(float64(x)), nil
	case int8:
		return NumberValue(float64(x)), nil
	case int16:
		return NumberValue(float64(x)), nil
	case int32:
		return NumberValue(float64(x)), nil
	case int64:
		return NumberValue(float64(x)), nil
	case uint:
		return NumberValue(float64(x)), nil
	case uint8:
		return NumberValue(float64(x)), nil
	case uint16:
		return NumberValue(float64(x)), nil
	case uint32:
		return NumberValue(float64(x)), nil
	case uint64:
		return NumberValue(float64(x)), nil
	case float32:
		return FiniteNumber(float64(x))
	case float64:
		return FiniteNumber(x)
	case json.Number:
		return ParseNumber(string(x))
	default:
		return Scalar{}, fmt.Errorf("%w: %T", ErrNotScalar, v)
	}
}

// Kind returns the type of the value.
func (s Scalar) Kind() Kind {
	return s.kind
}

// Str returns the string value and whether s holds a string.
func (s Scalar) Str() (string, bool) {
	return s.str, s.kind == KindString
}

// Bool returns the bool value and whether s holds a bool.
func (s Scalar) Bool() (bool, bool) {
	return s.b, s.kind == KindBool
}

// Number returns the numeric value and whether s holds a number.
func (s Scalar) Number() (float64, bool) {
	return s.num, s.kind == KindNumber
}

// Interface returns the value as a string, bool or float64.
func (s Scalar) Interface() any {
	switch s.kind {
	case KindBool:
		return s.b
	case KindNumber:
		return s.num
	default:
		return s.str
	}
}

// Equal reports whether both scalars have the same kind and value.
// NaN numbers compare equal to each other.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}

	switch s.kind {
	case KindBool:
		return s.b == o.b
	case KindNumber:
		return s.num == o.num || (math.IsNaN(s.num) && math.IsNaN(o.num))
	default:
		return s.str == o.str
	}
}

// String formats the value the way it would be interpolated into text.
func (s Scalar) String() string {
	switch s.kind {
	case KindBool:
		return strconv.FormatBool(s.b)
	case KindNumber:
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	default:
		return s.str
	}
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Interface())
}
