package vcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-vep/internal/merge"
)

func TestFormatIndex(t *testing.T) {
	idx, ok := FormatIndex("GT:AD:PL", "PL")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = FormatIndex("GT:AD", "PL")
	assert.False(t, ok)
}

func TestParseGT(t *testing.T) {
	gt, ok := ParseGT("0/1")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, gt)

	gt, ok = ParseGT("1|1")
	require.True(t, ok)
	assert.Equal(t, []int{1, 1}, gt)

	_, ok = ParseGT(".")
	assert.False(t, ok)

	_, ok = ParseGT("./.")
	assert.False(t, ok)
}

func TestParsePL(t *testing.T) {
	pl := ParsePL("0,10,20")
	assert.Equal(t, []int32{0, 10, 20}, pl)

	pl = ParsePL("0,.,20")
	assert.Equal(t, []int32{0, merge.MissingInt32, 20}, pl)

	assert.Nil(t, ParsePL("."))
	assert.Nil(t, ParsePL(""))
}

func TestBuildCall_PlaceholderRefWhenBeforeSiteStart(t *testing.T) {
	v := &Variant{Pos: 95, Ref: "N", Alt: "."}
	call := BuildCall(v, merge.DefaultNonRefToken, 3, 100)

	assert.True(t, call.IsPlaceholderRef())
	assert.Equal(t, "N", call.Ref())
}

func TestBuildCall_NonPlaceholderAtSiteStart(t *testing.T) {
	v := &Variant{Pos: 100, Ref: "A", Alt: "T,<NON_REF>"}
	call := BuildCall(v, merge.DefaultNonRefToken, 3, 100)

	assert.False(t, call.IsPlaceholderRef())
	assert.Equal(t, "A", call.Ref())
	require.Len(t, call.Alt(), 2)
	assert.False(t, call.Alt()[0].IsNonRef())
	assert.True(t, call.Alt()[1].IsNonRef())
}

func TestBuildCall_ParsesGTAndPLFromSampleColumns(t *testing.T) {
	v := &Variant{
		Pos:           100,
		Ref:           "A",
		Alt:           "T",
		SampleColumns: "GT:PL\t0/1:0,10,20",
	}
	call := BuildCall(v, merge.DefaultNonRefToken, 3, 100)

	assert.Equal(t, []int{0, 1}, call.GT())
	f, ok := call.Field(3)
	require.True(t, ok)
	assert.Equal(t, []int32{0, 10, 20}, f.I32)
}

func TestBuildVariant_SiteStartIsMinPosAcrossSamples(t *testing.T) {
	perSample := []*Variant{
		{Pos: 100, Ref: "A", Alt: "T"},
		{Pos: 98, Ref: "N", Alt: "."},
		nil,
	}

	variant := BuildVariant(perSample, merge.DefaultNonRefToken, 3)
	assert.Equal(t, int64(98), variant.ColumnBegin())
	assert.Equal(t, 3, variant.NumCalls())

	// perSample[0] starts after siteStart, not before it: not a placeholder.
	assert.False(t, variant.CallAt(0).IsPlaceholderRef())
	// perSample[1] is exactly at siteStart: not a placeholder.
	assert.False(t, variant.CallAt(1).IsPlaceholderRef())
	// perSample[2] was nil: marked invalid, excluded from Calls().
	assert.False(t, variant.CallAt(2).IsValid())
}
