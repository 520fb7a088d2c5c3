package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-vep/internal/merge"
)

func TestWriteAndLookupMergeResults(t *testing.T) {
	s := openInMemory(t)

	results := []*merge.MergedVariant{
		{
			ColumnBegin:   25245350,
			Ref:           "C",
			Alt:           []string{"A", "<NON_REF>"},
			NonRefPresent: true,
			Calls: []*merge.VariantCall{
				merge.NewVariantCall(25245350),
				merge.NewVariantCall(25245350),
			},
		},
	}

	require.NoError(t, s.WriteMergeResults("12", results))

	alt, nonRefPresent, numSamples, found, err := s.LookupMergeResult("12", 25245350, "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "A,<NON_REF>", alt)
	assert.True(t, nonRefPresent)
	assert.Equal(t, 2, numSamples)
}

func TestLookupMergeResult_NotFound(t *testing.T) {
	s := openInMemory(t)

	_, _, _, found, err := s.LookupMergeResult("1", 1, "A")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWriteMergeResults_EmptyIsNoop(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteMergeResults("1", nil))
}
