package merge

// FieldMode selects how a numeric field's elements correspond to merged
// alleles.
type FieldMode int

const (
	// AlleleIndexedMode: length = number of alleles including REF.
	AlleleIndexedMode FieldMode = iota
	// AltOnlyMode: length = number of alt alleles (REF excluded).
	AltOnlyMode
	// GenotypeIndexedMode: length = G(numAlleles), the unordered-pair count.
	GenotypeIndexedMode
)

// NumElements returns the output length for mode given the merged alt
// allele count.
func (m FieldMode) NumElements(numAltMerged int) int {
	switch m {
	case AlleleIndexedMode:
		return numAltMerged + 1
	case AltOnlyMode:
		return numAltMerged
	case GenotypeIndexedMode:
		return NumGenotypes(numAltMerged + 1)
	default:
		return 0
	}
}

// RemapField rewrites one sample's numeric field from input allele space
// into merged allele space, dispatching on input's ElementType at this
// single site. out must already be sized to mode's output length for
// numAltMerged. validCounts, if non-nil, is incremented per output slot
// that received non-missing data (shared across a site's samples, so
// callers pass the same slice for every sample).
func RemapField(input *Field, am *AlleleMap, sampleIdx int, mode FieldMode, numAltMerged int, out *Field, validCounts []int, colBegin int64) error {
	switch input.Type {
	case Int32Type:
		return remapTyped(input.I32, FieldSink[int32]{out.I32}, am, sampleIdx, mode, numAltMerged, MissingInt32, validCounts)
	case Int64Type:
		return remapTyped(input.I64, FieldSink[int64]{out.I64}, am, sampleIdx, mode, numAltMerged, MissingInt64, validCounts)
	case Uint32Type:
		return remapTyped(input.U32, FieldSink[uint32]{out.U32}, am, sampleIdx, mode, numAltMerged, MissingUint32, validCounts)
	case Uint64Type:
		return remapTyped(input.U64, FieldSink[uint64]{out.U64}, am, sampleIdx, mode, numAltMerged, MissingUint64, validCounts)
	case Float32Type:
		return remapTyped(input.F32, FieldSink[float32]{out.F32}, am, sampleIdx, mode, numAltMerged, MissingFloat32(), validCounts)
	case Float64Type:
		return remapTyped(input.F64, FieldSink[float64]{out.F64}, am, sampleIdx, mode, numAltMerged, MissingFloat64(), validCounts)
	case StringType:
		return remapTyped(input.Str, FieldSink[string]{out.Str}, am, sampleIdx, mode, numAltMerged, MissingString, validCounts)
	case CharType:
		return remapTyped(input.Ch, FieldSink[byte]{out.Ch}, am, sampleIdx, mode, numAltMerged, MissingChar, validCounts)
	default:
		return &UnsupportedElementTypeError{ColumnBegin: colBegin, Type: input.Type}
	}
}

// remapTyped implements the shared remapping rule for one concrete Go
// element type T.
func remapTyped[T any](input []T, sink Sink[T], am *AlleleMap, sampleIdx int, mode FieldMode, numAltMerged int, missing T, validCounts []int) error {
	numAlleles := numAltMerged + 1

	switch mode {
	case AlleleIndexedMode:
		for j := 0; j < numAlleles; j++ {
			i, ok := am.ResolveInput(sampleIdx, j)
			if !ok || i < 0 || i >= len(input) {
				sink.Put(j, missing)
				continue
			}
			sink.Put(j, input[i])
			bump(validCounts, j)
		}

	case AltOnlyMode:
		for j := 0; j < numAltMerged; j++ {
			i, ok := am.ResolveInput(sampleIdx, j+1)
			if !ok {
				sink.Put(j, missing)
				continue
			}
			ii := i - 1
			if ii < 0 || ii >= len(input) {
				sink.Put(j, missing)
				continue
			}
			sink.Put(j, input[ii])
			bump(validCounts, j)
		}

	case GenotypeIndexedMode:
		for k := 0; k < numAlleles; k++ {
			for j := 0; j <= k; j++ {
				outIdx := GtIdx(j, k)

				ij, jok := am.ResolveInput(sampleIdx, j)
				ik, kok := am.ResolveInput(sampleIdx, k)
				if !jok || !kok {
					sink.Put(outIdx, missing)
					continue
				}

				inIdx := GtIdx(ij, ik)
				if inIdx < 0 || inIdx >= len(input) {
					sink.Put(outIdx, missing)
					continue
				}
				sink.Put(outIdx, input[inIdx])
				bump(validCounts, outIdx)
			}
		}
	}

	return nil
}

func bump(counts []int, idx int) {
	if counts != nil && idx >= 0 && idx < len(counts) {
		counts[idx]++
	}
}
