package merge

// RemapGT rewrites one sample's GT vector from input allele indices into
// merged allele indices. Every allele a sample declares in GT must have
// been recorded by AltMerger; an unmapped allele is a contract violation,
// not a fallback case (unlike FieldRemapper, there is no NON_REF
// substitution here).
func RemapGT(call *VariantCall, am *AlleleMap, sampleIdx int) ([]int, error) {
	input := call.GT()
	out := make([]int, len(input))

	for p, allele := range input {
		merged, ok := am.MergedOf(sampleIdx, allele)
		if !ok {
			return nil, &UnmappedGTAlleleError{
				ColumnBegin: call.ColumnBegin(),
				Sample:      sampleIdx,
				InputAllele: allele,
			}
		}
		out[p] = merged
	}

	return out, nil
}
