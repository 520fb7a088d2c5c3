package merge

// Missing is the sentinel returned for an undefined AlleleMap lookup. It
// lies outside the valid index range ([0, n) for any allele count n).
const Missing = -1

// AlleleMap is the bidirectional, per-sample allele index table between
// input allele space and merged allele space. Both axes grow
// monotonically: EnsureCapacity never invalidates an entry set by an
// earlier call. A single instance is meant to be reused across many
// merge calls via Reset.
type AlleleMap struct {
	inputToMerged [][]int // [sample][inputIdx] -> mergedIdx, or Missing
	mergedToInput [][]int // [sample][mergedIdx] -> inputIdx, or Missing
	nonRefInput   []int   // [sample] -> the sample's own NON_REF input index, or Missing
}

// NewAlleleMap constructs an empty AlleleMap.
func NewAlleleMap() *AlleleMap {
	return &AlleleMap{}
}

// Reset discards all entries and rows, preparing the map for the next
// site. Callers must call EnsureCapacity again before Set.
func (m *AlleleMap) Reset() {
	for i := range m.inputToMerged {
		m.inputToMerged[i] = m.inputToMerged[i][:0]
	}
	for i := range m.mergedToInput {
		m.mergedToInput[i] = m.mergedToInput[i][:0]
	}
	m.inputToMerged = m.inputToMerged[:0]
	m.mergedToInput = m.mergedToInput[:0]
	m.nonRefInput = m.nonRefInput[:0]
}

// EnsureCapacity grows the map to hold at least nSamples rows and
// nMergedAlleles merged-axis columns. It is safe to call repeatedly with
// growing values as AltMerger discovers more alleles; existing entries
// are preserved.
func (m *AlleleMap) EnsureCapacity(nSamples, nMergedAlleles int) {
	for len(m.inputToMerged) < nSamples {
		m.inputToMerged = append(m.inputToMerged, nil)
	}
	for len(m.mergedToInput) < nSamples {
		m.mergedToInput = append(m.mergedToInput, nil)
	}
	for len(m.nonRefInput) < nSamples {
		m.nonRefInput = append(m.nonRefInput, Missing)
	}
	for s := 0; s < nSamples; s++ {
		m.mergedToInput[s] = growMissing(m.mergedToInput[s], nMergedAlleles)
	}
}

func growMissing(row []int, n int) []int {
	for len(row) < n {
		row = append(row, Missing)
	}
	return row
}

// Set records sample s's input allele index i as corresponding to merged
// allele index j, symmetrically in both directions.
func (m *AlleleMap) Set(s, i, j int) {
	m.inputToMerged[s] = growMissing(m.inputToMerged[s], i+1)
	m.inputToMerged[s][i] = j
	m.mergedToInput[s] = growMissing(m.mergedToInput[s], j+1)
	m.mergedToInput[s][j] = i
}

// MergedOf returns the merged allele index corresponding to sample s's
// input allele index i, and whether it is defined.
func (m *AlleleMap) MergedOf(s, i int) (int, bool) {
	if s < 0 || s >= len(m.inputToMerged) || i < 0 || i >= len(m.inputToMerged[s]) {
		return Missing, false
	}
	v := m.inputToMerged[s][i]
	return v, v != Missing
}

// InputOf returns the input allele index corresponding to sample s's
// merged allele index j, and whether it is defined.
func (m *AlleleMap) InputOf(s, j int) (int, bool) {
	if s < 0 || s >= len(m.mergedToInput) || j < 0 || j >= len(m.mergedToInput[s]) {
		return Missing, false
	}
	v := m.mergedToInput[s][j]
	return v, v != Missing
}

// SetNonRefInput records sample s's own input allele index for the
// symbolic NON_REF allele, used as the fallback substitute by
// FieldRemapper and GenotypeRemapper when a merged allele was never
// observed in sample s.
func (m *AlleleMap) SetNonRefInput(s, inputIdx int) {
	for len(m.nonRefInput) <= s {
		m.nonRefInput = append(m.nonRefInput, Missing)
	}
	m.nonRefInput[s] = inputIdx
}

// NonRefInput returns sample s's own input allele index for NON_REF, and
// whether the sample had one.
func (m *AlleleMap) NonRefInput(s int) (int, bool) {
	if s < 0 || s >= len(m.nonRefInput) {
		return Missing, false
	}
	v := m.nonRefInput[s]
	return v, v != Missing
}

// ResolveInput returns the input allele index sample s should use in
// place of merged allele index j — FieldRemapper's substitution rule:
// the direct input_of(s, j) mapping if defined, otherwise the sample's
// own NON_REF input index as a catch-all, otherwise false.
func (m *AlleleMap) ResolveInput(s, j int) (int, bool) {
	if i, ok := m.InputOf(s, j); ok {
		return i, true
	}
	return m.NonRefInput(s)
}
