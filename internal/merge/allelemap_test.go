package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlleleMap_SetAndLookup(t *testing.T) {
	am := NewAlleleMap()
	am.EnsureCapacity(2, 3)

	am.Set(0, 0, 0)
	am.Set(0, 1, 2)
	am.Set(1, 0, 0)
	am.Set(1, 1, 1)

	j, ok := am.MergedOf(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, j)

	i, ok := am.InputOf(0, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = am.MergedOf(0, 5)
	assert.False(t, ok)

	_, ok = am.InputOf(1, 2)
	assert.False(t, ok)
}

func TestAlleleMap_ResolveInput_FallsBackToNonRef(t *testing.T) {
	am := NewAlleleMap()
	am.EnsureCapacity(1, 3)
	am.Set(0, 0, 0) // REF
	am.SetNonRefInput(0, 2)

	// Merged allele 1 was never observed in sample 0: falls back to NON_REF.
	i, ok := am.ResolveInput(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	// Merged allele 0 (REF) is directly mapped; no fallback needed.
	i, ok = am.ResolveInput(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestAlleleMap_ResolveInput_NoMappingNoFallback(t *testing.T) {
	am := NewAlleleMap()
	am.EnsureCapacity(1, 2)
	am.Set(0, 0, 0)

	_, ok := am.ResolveInput(0, 1)
	assert.False(t, ok)
}

func TestAlleleMap_Reset_ClearsEntriesAndAllowsRegrowth(t *testing.T) {
	am := NewAlleleMap()
	am.EnsureCapacity(2, 2)
	am.Set(0, 0, 0)
	am.Set(1, 1, 1)

	am.Reset()

	_, ok := am.MergedOf(0, 0)
	assert.False(t, ok)

	am.EnsureCapacity(2, 2)
	am.Set(0, 0, 0)
	j, ok := am.MergedOf(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, j)
}

func TestAlleleMap_EnsureCapacity_GrowsMonotonically(t *testing.T) {
	am := NewAlleleMap()
	am.EnsureCapacity(1, 1)
	am.Set(0, 0, 0)

	am.EnsureCapacity(3, 4)

	j, ok := am.MergedOf(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, j)

	_, ok = am.InputOf(2, 3)
	assert.False(t, ok)
}
