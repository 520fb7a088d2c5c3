package merge

// MergedVariant is the output of one MergeOperator.Operate call: the
// site-level merged REF/ALT plus each sample's remapped call. Calls is
// indexed the same way as the input Variant's calls (by
// call-index-in-variant); entries for calls that were invalid on input
// are nil.
type MergedVariant struct {
	ColumnBegin   int64
	Ref           string
	Alt           []string
	NonRefPresent bool
	Calls         []*VariantCall

	// ValidCounts holds, per queried allele-length field's query index,
	// a num_calls_with_valid_data counter: how many samples contributed
	// non-missing data to each output slot.
	ValidCounts map[int][]int
}

// MergeOperator orchestrates ReferenceMerger -> AltMerger -> (FieldRemapper,
// GenotypeRemapper) over one multi-sample Variant. It owns a scratch
// AlleleMap reused across calls; two concurrent invocations must not
// share an instance — callers sharding sites across goroutines should
// construct one MergeOperator per worker.
type MergeOperator struct {
	am  *AlleleMap
	cfg QueryConfig

	// LenientRefPrefix downgrades reference-prefix violations from a
	// fatal error to a dropped call, per the CLI's --lenient-ref-prefix
	// flag. Core behavior defaults to strict (false).
	LenientRefPrefix bool
}

// NewMergeOperator builds a MergeOperator against the given query
// configuration.
func NewMergeOperator(cfg QueryConfig) *MergeOperator {
	return &MergeOperator{am: NewAlleleMap(), cfg: cfg}
}

// Operate merges one site's per-sample calls into a single MergedVariant.
// The input Variant is only read; scratch state is reset on every call.
func (op *MergeOperator) Operate(variant *Variant) (*MergedVariant, error) {
	op.am.Reset()

	for idx, call := range variant.Calls() {
		if call.Ref() == "" {
			return nil, &MissingRequiredFieldError{
				ColumnBegin: variant.ColumnBegin(),
				Sample:      idx,
				Field:       "REF",
			}
		}
	}

	refMerged, err := MergeReference(variant, op.LenientRefPrefix)
	if err != nil {
		return nil, err
	}

	op.am.EnsureCapacity(variant.NumCalls(), 1)

	altsMerged, nonRefPresent, err := MergeAlts(variant, refMerged, op.am, op.cfg.NonRefToken())
	if err != nil {
		return nil, err
	}
	numAltMerged := len(altsMerged)

	allAlleleFields := op.cfg.AlleleLengthFields()
	fieldInfos := make(map[int]FieldInfo, len(allAlleleFields))
	validCounts := make(map[int][]int, len(allAlleleFields))
	for _, qidx := range allAlleleFields {
		info, _ := op.cfg.FieldInfo(qidx)
		fieldInfos[qidx] = info
		validCounts[qidx] = make([]int, info.Mode.NumElements(numAltMerged))
	}

	_, hasGT := op.cfg.QueryIdxFor(FieldGT)

	outCalls := make([]*VariantCall, variant.NumCalls())
	for idx, call := range variant.Calls() {
		out := call.Clone()

		for _, qidx := range allAlleleFields {
			info := fieldInfos[qidx]
			n := info.Mode.NumElements(numAltMerged)
			outField := NewField(info.ElementType, n)

			if inField, ok := call.Field(qidx); ok && inField != nil {
				if err := RemapField(inField, op.am, idx, info.Mode, numAltMerged, outField, validCounts[qidx], variant.ColumnBegin()); err != nil {
					return nil, err
				}
			}
			out.SetField(qidx, outField)
		}

		if hasGT && call.GT() != nil {
			remappedGT, err := RemapGT(call, op.am, idx)
			if err != nil {
				return nil, err
			}
			out.SetGT(remappedGT)
		}

		outCalls[idx] = out
	}

	return &MergedVariant{
		ColumnBegin:   variant.ColumnBegin(),
		Ref:           refMerged,
		Alt:           altsMerged,
		NonRefPresent: nonRefPresent,
		Calls:         outCalls,
		ValidCounts:   validCounts,
	}, nil
}
