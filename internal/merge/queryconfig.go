package merge

// KnownField is the closed set of query fields the merge core recognizes
// by name. Any other query-field index is an opaque numeric field (PL
// and similar) identified only by its FieldInfo.
type KnownField int

const (
	FieldUnknown KnownField = iota
	FieldREF
	FieldALT
	FieldGT
	FieldPL
)

// FieldInfo describes how a query field's length depends on the allele
// count, and its element type — the information the external
// query-configuration collaborator is required to supply.
type FieldInfo struct {
	QueryIdx    int
	ElementType ElementType
	Mode        FieldMode
}

// QueryConfig is the read-only, external query-configuration contract:
// it tells MergeOperator which query-field index carries REF/ALT/GT, and
// which other query indices are allele-length-dependent numeric fields
// that need remapping.
type QueryConfig interface {
	// NumQueriedAttributes returns the number of advertised query fields.
	NumQueriedAttributes() int
	// IsKnownField reports whether queryIdx names a recognized field.
	IsKnownField(queryIdx int) bool
	// KnownFieldEnum returns the recognized field kind for queryIdx.
	KnownFieldEnum(queryIdx int) KnownField
	// QueryIdxFor returns the query index carrying the given known field,
	// and whether it is present at all.
	QueryIdxFor(f KnownField) (int, bool)
	// FieldInfo returns remapping metadata for queryIdx.
	FieldInfo(queryIdx int) (FieldInfo, bool)
	// AlleleLengthFields returns the query indices of every numeric field
	// the caller advertises as allele-length-dependent (PL and similar;
	// excludes REF/ALT/GT, which MergeOperator handles directly).
	AlleleLengthFields() []int
	// NonRefToken returns the literal used to render the symbolic NON_REF
	// allele at the external-interface boundary.
	NonRefToken() string
}

// VCFQueryConfig is a small static QueryConfig mapping field names to
// stable query indices: REF, ALT, GT and a fixed set of
// allele-length-dependent numeric fields (PL in the standard layout) each
// get one.
type VCFQueryConfig struct {
	RefIdx, AltIdx, GTIdx int
	Numeric               []FieldInfo // query indices >= GTIdx+1, in the caller's declared order
	nonRefToken           string
}

// NewVCFQueryConfig builds the standard REF/ALT/GT/PL layout used by the
// merge CLI, with PL as a genotype-indexed INT32 field at query index 3.
func NewVCFQueryConfig(nonRefToken string) *VCFQueryConfig {
	if nonRefToken == "" {
		nonRefToken = DefaultNonRefToken
	}
	return &VCFQueryConfig{
		RefIdx: 0,
		AltIdx: 1,
		GTIdx:  2,
		Numeric: []FieldInfo{
			{QueryIdx: 3, ElementType: Int32Type, Mode: GenotypeIndexedMode},
		},
		nonRefToken: nonRefToken,
	}
}

func (c *VCFQueryConfig) NumQueriedAttributes() int {
	return 3 + len(c.Numeric)
}

func (c *VCFQueryConfig) IsKnownField(queryIdx int) bool {
	return queryIdx == c.RefIdx || queryIdx == c.AltIdx || queryIdx == c.GTIdx
}

func (c *VCFQueryConfig) KnownFieldEnum(queryIdx int) KnownField {
	switch queryIdx {
	case c.RefIdx:
		return FieldREF
	case c.AltIdx:
		return FieldALT
	case c.GTIdx:
		return FieldGT
	default:
		for _, f := range c.Numeric {
			if f.QueryIdx == queryIdx {
				return FieldPL
			}
		}
		return FieldUnknown
	}
}

func (c *VCFQueryConfig) QueryIdxFor(f KnownField) (int, bool) {
	switch f {
	case FieldREF:
		return c.RefIdx, true
	case FieldALT:
		return c.AltIdx, true
	case FieldGT:
		return c.GTIdx, true
	case FieldPL:
		for _, fi := range c.Numeric {
			return fi.QueryIdx, true
		}
	}
	return 0, false
}

func (c *VCFQueryConfig) FieldInfo(queryIdx int) (FieldInfo, bool) {
	for _, f := range c.Numeric {
		if f.QueryIdx == queryIdx {
			return f, true
		}
	}
	return FieldInfo{}, false
}

func (c *VCFQueryConfig) AlleleLengthFields() []int {
	idxs := make([]int, len(c.Numeric))
	for i, f := range c.Numeric {
		idxs[i] = f.QueryIdx
	}
	return idxs
}

func (c *VCFQueryConfig) NonRefToken() string {
	return c.nonRefToken
}
