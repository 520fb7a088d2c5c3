package merge

// MergeAlts folds a site's per-sample ALT vectors into a deduplicated
// merged ALT list, padding alleles whose sample had a shorter REF, and
// recording the discovered index mappings into allele map am. NON_REF,
// if present in any sample, is appended as the last merged allele.
//
// Merged ALT order is the order of first discovery across samples
// scanned in call-index order; dedup is exact string equality after
// padding.
func MergeAlts(variant *Variant, refMerged string, am *AlleleMap, nonRefToken string) (altsMerged []string, nonRefPresent bool, err error) {
	seen := make(map[string]int) // padded allele sequence -> merged index (1-based, REF is 0)

	type pendingNonRef struct {
		sample, inputIdx int
	}
	var nonRefSamples []pendingNonRef

	for sampleIdx, call := range variant.Calls() {
		am.Set(sampleIdx, 0, 0) // REF <-> REF

		ref := call.Ref()
		suffix := ""
		if len(refMerged) > len(ref) {
			suffix = refMerged[len(ref):]
		}

		for k, a := range call.Alt() {
			inputIdx := k + 1

			if a.IsNonRef() {
				am.SetNonRefInput(sampleIdx, inputIdx)
				nonRefPresent = true
				nonRefSamples = append(nonRefSamples, pendingNonRef{sampleIdx, inputIdx})
				continue
			}

			padded := a.Sequence() + suffix
			if padded == refMerged {
				return nil, false, &InconsistentReferenceError{
					ColumnBegin: variant.ColumnBegin(),
					Merged:      refMerged,
					Conflicting: padded,
				}
			}

			mergedIdx, ok := seen[padded]
			if !ok {
				mergedIdx = len(altsMerged) + 1
				seen[padded] = mergedIdx
				altsMerged = append(altsMerged, padded)
				am.EnsureCapacity(variant.NumCalls(), mergedIdx+1)
			}
			am.Set(sampleIdx, inputIdx, mergedIdx)
		}
	}

	if nonRefPresent {
		nonRefIdx := len(altsMerged) + 1
		altsMerged = append(altsMerged, nonRefToken)
		am.EnsureCapacity(variant.NumCalls(), nonRefIdx+1)
		for _, nr := range nonRefSamples {
			am.Set(nr.sample, nr.inputIdx, nonRefIdx)
		}
	}

	return altsMerged, nonRefPresent, nil
}
