package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapGT_RewritesToMergedIndices(t *testing.T) {
	am := NewAlleleMap()
	am.EnsureCapacity(1, 3)
	am.Set(0, 0, 0)
	am.Set(0, 1, 2)

	call := NewVariantCall(100)
	call.SetGT([]int{0, 1})

	out, err := RemapGT(call, am, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, out)
}

func TestRemapGT_UnmappedAlleleErrors(t *testing.T) {
	am := NewAlleleMap()
	am.EnsureCapacity(1, 1)
	am.Set(0, 0, 0)

	call := NewVariantCall(100)
	call.SetGT([]int{0, 1}) // allele 1 was never recorded

	_, err := RemapGT(call, am, 0)
	require.Error(t, err)
	var unmappedErr *UnmappedGTAlleleError
	assert.ErrorAs(t, err, &unmappedErr)
}
