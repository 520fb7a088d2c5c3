package merge

// Field is a typed, optional, resizable buffer of numeric or string
// values for one query-field index on one VariantCall. Exactly one of
// the typed slices is populated, selected by Type.
type Field struct {
	Type  ElementType
	Valid bool

	I32 []int32
	I64 []int64
	U32 []uint32
	U64 []uint64
	F32 []float32
	F64 []float64
	Str []string
	Ch  []byte
}

// Len returns the number of elements currently stored, regardless of
// element type.
func (f *Field) Len() int {
	switch f.Type {
	case Int32Type:
		return len(f.I32)
	case Int64Type:
		return len(f.I64)
	case Uint32Type:
		return len(f.U32)
	case Uint64Type:
		return len(f.U64)
	case Float32Type:
		return len(f.F32)
	case Float64Type:
		return len(f.F64)
	case StringType:
		return len(f.Str)
	case CharType:
		return len(f.Ch)
	default:
		return 0
	}
}

// NewField allocates an empty, valid Field of the given type and length,
// pre-filled with that type's missing sentinel.
func NewField(t ElementType, n int) *Field {
	f := &Field{Type: t, Valid: true}
	f.Resize(n)
	return f
}

// Resize grows or shrinks the field's backing slice to exactly n
// elements, filling any new slots with the type's missing sentinel.
func (f *Field) Resize(n int) {
	switch f.Type {
	case Int32Type:
		f.I32 = resizeFill(f.I32, n, MissingInt32)
	case Int64Type:
		f.I64 = resizeFill(f.I64, n, MissingInt64)
	case Uint32Type:
		f.U32 = resizeFill(f.U32, n, MissingUint32)
	case Uint64Type:
		f.U64 = resizeFill(f.U64, n, MissingUint64)
	case Float32Type:
		f.F32 = resizeFill(f.F32, n, MissingFloat32())
	case Float64Type:
		f.F64 = resizeFill(f.F64, n, MissingFloat64())
	case StringType:
		f.Str = resizeFill(f.Str, n, MissingString)
	case CharType:
		f.Ch = resizeFill(f.Ch, n, MissingChar)
	}
}

func resizeFill[T any](existing []T, n int, fill T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = fill
	}
	copy(out, existing)
	return out
}
