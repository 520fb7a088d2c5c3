// Package merge implements the multi-sample variant merger: folding
// per-sample variant calls that share a start position into a single
// merged variant with a union allele list and re-indexed per-sample fields.
package merge

// DefaultNonRefToken is the literal used to render the symbolic "any
// unseen allele" token at the external-interface boundary (serialized
// output, VCF ALT column). Callers may override it via QueryConfig for
// deployments that use a different gVCF convention.
const DefaultNonRefToken = "<NON_REF>"

// Allele is a single reference or alternate allele. It is modeled as a
// first-class case (concrete sequence, or the symbolic NON_REF marker)
// rather than as a magic string compared at every call site; NON_REF is
// only rendered to its literal token at the external-interface boundary.
type Allele struct {
	seq    string
	nonRef bool
}

// NewAllele builds a concrete, sequence-valued allele (e.g. "A", "GT").
func NewAllele(seq string) Allele {
	return Allele{seq: seq}
}

// NonRefAllele returns the symbolic "any unseen allele" marker.
func NonRefAllele() Allele {
	return Allele{nonRef: true}
}

// IsNonRef reports whether a is the symbolic NON_REF allele.
func (a Allele) IsNonRef() bool {
	return a.nonRef
}

// Sequence returns the nucleotide sequence of a concrete allele. Calling
// it on NON_REF returns the empty string; callers should check IsNonRef
// first.
func (a Allele) Sequence() string {
	return a.seq
}

// Equal reports whether two alleles denote the same thing: NON_REF only
// equals NON_REF, and concrete alleles compare by sequence.
func (a Allele) Equal(o Allele) bool {
	if a.nonRef || o.nonRef {
		return a.nonRef == o.nonRef
	}
	return a.seq == o.seq
}

// String renders the allele for display, using token for the symbolic
// NON_REF case.
func (a Allele) String(token string) string {
	if a.nonRef {
		return token
	}
	return a.seq
}

// ParseAllele recognizes the configured NON_REF literal and produces the
// symbolic allele for it; any other input becomes a concrete allele.
func ParseAllele(s, nonRefToken string) Allele {
	if s == nonRefToken {
		return NonRefAllele()
	}
	return NewAllele(s)
}
