package merge

import "fmt"

// InconsistentReferenceError reports a REF that is neither a prefix of,
// nor prefixed by, the merged REF accumulated so far (or, during ALT
// merging, a padded ALT that collapses onto the merged REF).
type InconsistentReferenceError struct {
	ColumnBegin int64
	Merged      string
	Conflicting string
}

func (e *InconsistentReferenceError) Error() string {
	return fmt.Sprintf("merge at %d: inconsistent reference: merged=%q conflicting=%q",
		e.ColumnBegin, e.Merged, e.Conflicting)
}

// UnmappedGTAlleleError reports a GT allele index with no entry in the
// AlleleMap: a contract violation, since every allele a sample declares
// must have been recorded by AltMerger.
type UnmappedGTAlleleError struct {
	ColumnBegin int64
	Sample      int
	InputAllele int
}

func (e *UnmappedGTAlleleError) Error() string {
	return fmt.Sprintf("merge at %d: sample %d: unmapped GT allele %d",
		e.ColumnBegin, e.Sample, e.InputAllele)
}

// UnsupportedElementTypeError reports a Field whose ElementType fell
// through FieldRemapper's dispatch, indicating a configuration error.
type UnsupportedElementTypeError struct {
	ColumnBegin int64
	Type        ElementType
}

func (e *UnsupportedElementTypeError) Error() string {
	return fmt.Sprintf("merge at %d: unsupported element type %s", e.ColumnBegin, e.Type)
}

// MissingRequiredFieldError reports a REF absent where required, checked
// at the start of Operate.
type MissingRequiredFieldError struct {
	ColumnBegin int64
	Sample      int
	Field       string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("merge at %d: sample %d: missing required field %s",
		e.ColumnBegin, e.Sample, e.Field)
}
