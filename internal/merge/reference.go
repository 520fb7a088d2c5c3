package merge

import "strings"

// MergeReference folds a site's valid calls into a single longest REF,
// enforcing the prefix invariant: every non-placeholder input REF must be
// a prefix of the merged REF. Placeholder REFs (middle-of-deletion
// continuations, normalized to "N" at the input boundary) never
// contribute content and are skipped once a merged value has been seeded.
//
// When lenient is true, a prefix violation is not fatal: the offending
// call is dropped from the fold (treated as if absent) instead of
// aborting the site, for callers that would rather merge what they can
// than lose an entire site to one malformed sample.
func MergeReference(variant *Variant, lenient bool) (string, error) {
	var merged string
	var mergedIsPlaceholder bool
	seeded := false

	for _, call := range variant.Calls() {
		r := call.Ref()
		if !seeded {
			merged = r
			mergedIsPlaceholder = call.IsPlaceholderRef()
			seeded = true
			continue
		}

		if call.IsPlaceholderRef() {
			continue
		}

		switch {
		case len(r) > len(merged):
			if !mergedIsPlaceholder && !strings.HasPrefix(r, merged) {
				if lenient {
					continue
				}
				return "", &InconsistentReferenceError{
					ColumnBegin: variant.ColumnBegin(),
					Merged:      merged,
					Conflicting: r,
				}
			}
			merged = r
			mergedIsPlaceholder = false
		default:
			if !mergedIsPlaceholder && !strings.HasPrefix(merged, r) {
				if lenient {
					continue
				}
				return "", &InconsistentReferenceError{
					ColumnBegin: variant.ColumnBegin(),
					Merged:      merged,
					Conflicting: r,
				}
			}
		}
	}

	return merged, nil
}
