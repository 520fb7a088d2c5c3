package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithRef(ref string, placeholder bool) *VariantCall {
	c := NewVariantCall(100)
	c.SetRef(ref)
	c.SetPlaceholderRef(placeholder)
	return c
}

func TestMergeReference_AllSameRef(t *testing.T) {
	v := NewVariant(100, []*VariantCall{
		callWithRef("A", false),
		callWithRef("A", false),
	})

	merged, err := MergeReference(v, false)
	require.NoError(t, err)
	assert.Equal(t, "A", merged)
}

func TestMergeReference_LongerRefWins(t *testing.T) {
	v := NewVariant(100, []*VariantCall{
		callWithRef("A", false),
		callWithRef("AGT", false),
	})

	merged, err := MergeReference(v, false)
	require.NoError(t, err)
	assert.Equal(t, "AGT", merged)
}

func TestMergeReference_PlaceholderNeverContributes(t *testing.T) {
	v := NewVariant(100, []*VariantCall{
		callWithRef("AGT", false),
		callWithRef("N", true),
	})

	merged, err := MergeReference(v, false)
	require.NoError(t, err)
	assert.Equal(t, "AGT", merged)
}

func TestMergeReference_PlaceholderSeedExemptFromPrefixCheck(t *testing.T) {
	// First call seeds a placeholder; later non-placeholder calls should
	// not be prefix-checked against it.
	v := NewVariant(100, []*VariantCall{
		callWithRef("N", true),
		callWithRef("AGT", false),
	})

	merged, err := MergeReference(v, false)
	require.NoError(t, err)
	assert.Equal(t, "AGT", merged)
}

func TestMergeReference_InconsistentPrefix(t *testing.T) {
	v := NewVariant(100, []*VariantCall{
		callWithRef("AGT", false),
		callWithRef("CGT", false),
	})

	_, err := MergeReference(v, false)
	require.Error(t, err)
	var refErr *InconsistentReferenceError
	assert.ErrorAs(t, err, &refErr)
}

func TestMergeReference_Lenient_DropsOffendingCall(t *testing.T) {
	v := NewVariant(100, []*VariantCall{
		callWithRef("AGT", false),
		callWithRef("CGT", false),
	})

	merged, err := MergeReference(v, true)
	require.NoError(t, err)
	assert.Equal(t, "AGT", merged)
}
