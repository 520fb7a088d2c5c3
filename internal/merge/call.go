package merge

// VariantCall is one sample's call at a site: a REF/ALT pair, an
// optional GT, and a set of numeric fields keyed by query-field index.
type VariantCall struct {
	columnBegin    int64
	valid          bool
	placeholderRef bool

	ref string
	alt []Allele
	gt  []int // allele indices; nil if GT was not called for this sample

	numeric map[int]*Field // query field index -> allele/alt/genotype-length field
}

// NewVariantCall builds a valid call with the given start coordinate.
func NewVariantCall(columnBegin int64) *VariantCall {
	return &VariantCall{columnBegin: columnBegin, valid: true, numeric: make(map[int]*Field)}
}

// ColumnBegin returns the call's start coordinate.
func (c *VariantCall) ColumnBegin() int64 { return c.columnBegin }

// IsValid reports whether the call should be considered during merging.
func (c *VariantCall) IsValid() bool { return c.valid }

// SetValid marks the call valid or invalid.
func (c *VariantCall) SetValid(v bool) { c.valid = v }

// IsPlaceholderRef reports whether this call's REF carries no sequence
// guarantee (the call is the continuation of an upstream deletion).
func (c *VariantCall) IsPlaceholderRef() bool { return c.placeholderRef }

// SetPlaceholderRef marks this call's REF as a middle-of-deletion
// placeholder, opting it out of the prefix invariant check.
func (c *VariantCall) SetPlaceholderRef(p bool) { c.placeholderRef = p }

// Ref returns the call's reference allele sequence.
func (c *VariantCall) Ref() string { return c.ref }

// SetRef sets the call's reference allele sequence.
func (c *VariantCall) SetRef(ref string) { c.ref = ref }

// Alt returns the call's alternate alleles, in input order.
func (c *VariantCall) Alt() []Allele { return c.alt }

// SetAlt sets the call's alternate alleles.
func (c *VariantCall) SetAlt(alt []Allele) { c.alt = alt }

// GT returns the call's genotype as allele indices (0 = REF, 1.. = ALT,
// in input allele space). Returns nil if GT was not supplied.
func (c *VariantCall) GT() []int { return c.gt }

// SetGT sets the call's genotype as allele indices in input allele space.
func (c *VariantCall) SetGT(gt []int) { c.gt = gt }

// Field returns the numeric field stored at query-field index q, if any.
func (c *VariantCall) Field(q int) (*Field, bool) {
	f, ok := c.numeric[q]
	return f, ok
}

// SetField stores a numeric field at query-field index q.
func (c *VariantCall) SetField(q int, f *Field) {
	c.numeric[q] = f
}

// Clone returns a shallow copy of the call, with its own numeric-field
// map (but sharing Field pointers) so that MergeOperator can replace
// individual fields without mutating the input.
func (c *VariantCall) Clone() *VariantCall {
	clone := &VariantCall{
		columnBegin:    c.columnBegin,
		valid:          c.valid,
		placeholderRef: c.placeholderRef,
		ref:            c.ref,
		gt:             append([]int(nil), c.gt...),
		numeric:        make(map[int]*Field, len(c.numeric)),
	}
	clone.alt = append([]Allele(nil), c.alt...)
	for q, f := range c.numeric {
		clone.numeric[q] = f
	}
	return clone
}

// Variant is one site: all sample calls sharing a start coordinate.
type Variant struct {
	columnBegin int64
	calls       []*VariantCall
}

// NewVariant builds a Variant from its start coordinate and per-sample
// calls, indexed by call-index-in-variant (stable, not necessarily
// contiguous among valid calls).
func NewVariant(columnBegin int64, calls []*VariantCall) *Variant {
	return &Variant{columnBegin: columnBegin, calls: calls}
}

// ColumnBegin returns the site's start coordinate.
func (v *Variant) ColumnBegin() int64 { return v.columnBegin }

// NumCalls returns the total number of calls (valid and invalid).
func (v *Variant) NumCalls() int { return len(v.calls) }

// CallAt returns the call at the given call-index-in-variant.
func (v *Variant) CallAt(idx int) *VariantCall { return v.calls[idx] }

// Calls iterates valid calls in ascending call-index order, yielding each
// call's stable index alongside the call itself.
func (v *Variant) Calls() func(yield func(int, *VariantCall) bool) {
	return func(yield func(int, *VariantCall) bool) {
		for idx, c := range v.calls {
			if c == nil || !c.valid {
				continue
			}
			if !yield(idx, c) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the Variant with cloned calls, suitable
// as the MergeOperator's output scratch per site (the input Variant is
// never mutated).
func (v *Variant) Clone() *Variant {
	calls := make([]*VariantCall, len(v.calls))
	for i, c := range v.calls {
		if c == nil {
			continue
		}
		calls[i] = c.Clone()
	}
	return &Variant{columnBegin: v.columnBegin, calls: calls}
}
