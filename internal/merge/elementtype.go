package merge

import "math"

// ElementType tags the underlying Go type backing a Field. The set is
// closed: FieldRemapper dispatches on it at a single site and returns
// UnsupportedElementType for anything else.
type ElementType int

const (
	Int32Type ElementType = iota
	Int64Type
	Uint32Type
	Uint64Type
	Float32Type
	Float64Type
	StringType
	CharType
)

// String names the element type for diagnostics.
func (t ElementType) String() string {
	switch t {
	case Int32Type:
		return "INT32"
	case Int64Type:
		return "INT64"
	case Uint32Type:
		return "UINT32"
	case Uint64Type:
		return "UINT64"
	case Float32Type:
		return "FLOAT32"
	case Float64Type:
		return "FLOAT64"
	case StringType:
		return "STRING"
	case CharType:
		return "CHAR"
	default:
		return "UNKNOWN"
	}
}

// Missing sentinels per element type: a fixed negative constant for
// signed integers, an encoded NaN for floats, empty string for strings,
// NUL for chars. Unsigned integer types have no natural negative
// sentinel, so the maximum value is used instead.
const (
	MissingInt32   int32   = -2147483648
	MissingInt64   int64   = -9223372036854775808
	MissingUint32  uint32  = math.MaxUint32
	MissingUint64  uint64  = math.MaxUint64
	MissingString  string  = ""
	MissingChar    byte    = 0
)

// MissingFloat32 returns the encoded-NaN missing sentinel for FLOAT32
// fields. A function rather than a const: Go has no untyped NaN const.
func MissingFloat32() float32 {
	return float32(math.NaN())
}

// MissingFloat64 returns the encoded-NaN missing sentinel for FLOAT64
// fields.
func MissingFloat64() float64 {
	return math.NaN()
}
