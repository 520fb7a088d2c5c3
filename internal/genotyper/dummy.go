// Package genotyper provides a reference consumer for merged, remapped
// per-sample fields: a per-genotype median joint-likelihood caller.
package genotyper

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/inodb/vibe-vep/internal/merge"
)

// DummyGenotyper computes a per-genotype median PL across samples from a
// merged variant's remapped PL matrix. It is a worked consumer of
// internal/merge, not a joint genotyper: richer genotypers are out of
// scope.
type DummyGenotyper struct {
	NonRefToken string
}

// New builds a DummyGenotyper using the given NON_REF rendering token.
func New(nonRefToken string) *DummyGenotyper {
	if nonRefToken == "" {
		nonRefToken = merge.DefaultNonRefToken
	}
	return &DummyGenotyper{NonRefToken: nonRefToken}
}

// Medians computes, for every genotype slot, the median of the samples'
// remapped PL values that are non-missing, under the descending-order
// lower-median convention (rank floor(n/2) after sorting descending).
// Slots with no valid samples emit merge.MissingInt32.
func (g *DummyGenotyper) Medians(mv *merge.MergedVariant, plQueryIdx int) []int32 {
	numAlleles := len(mv.Alt) + 1
	numGenotypes := merge.NumGenotypes(numAlleles)

	out := make([]int32, numGenotypes)
	for slot := 0; slot < numGenotypes; slot++ {
		var values []int32
		for _, call := range mv.Calls {
			if call == nil {
				continue
			}
			f, ok := call.Field(plQueryIdx)
			if !ok || f == nil || f.Type != merge.Int32Type || slot >= len(f.I32) {
				continue
			}
			v := f.I32[slot]
			if v == merge.MissingInt32 {
				continue
			}
			values = append(values, v)
		}

		if len(values) == 0 {
			out[slot] = merge.MissingInt32
			continue
		}

		sort.Slice(values, func(i, j int) bool { return values[i] > values[j] })
		out[slot] = values[len(values)/2]
	}

	return out
}

// WriteLine writes one CSV-style output line for the merged variant and
// its computed medians: column_begin,REF,ALT...,median...
func (g *DummyGenotyper) WriteLine(w io.Writer, mv *merge.MergedVariant, medians []int32) error {
	parts := make([]string, 0, 2+len(mv.Alt)+len(medians))
	parts = append(parts, strconv.FormatInt(mv.ColumnBegin, 10))
	parts = append(parts, mv.Ref)
	parts = append(parts, mv.Alt...)
	for _, m := range medians {
		parts = append(parts, strconv.FormatInt(int64(m), 10))
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, ","))
	return err
}
