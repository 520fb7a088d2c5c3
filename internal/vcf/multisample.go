package vcf

import (
	"strconv"
	"strings"

	"github.com/inodb/vibe-vep/internal/merge"
)

// FormatIndex locates a FORMAT key's position within a colon-separated
// FORMAT string (e.g. "GT:AD:PL").
func FormatIndex(format, key string) (int, bool) {
	for i, k := range strings.Split(format, ":") {
		if k == key {
			return i, true
		}
	}
	return -1, false
}

// ParseGT parses a VCF GT string ("0/1", "0|1", "./.") into allele
// indices. Phasing is discarded (merge's Non-goals exclude phasing).
// Returns false if GT is missing or unparseable.
func ParseGT(raw string) ([]int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "." {
		return nil, false
	}

	sep := "/"
	if strings.Contains(raw, "|") {
		sep = "|"
	}

	parts := strings.Split(raw, sep)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "." {
			return nil, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// ParsePL parses a comma-separated PL string into int32 values, using
// merge.MissingInt32 for "." entries.
func ParsePL(raw string) []int32 {
	if raw == "" || raw == "." {
		return nil
	}

	fields := strings.Split(raw, ",")
	out := make([]int32, len(fields))
	for i, f := range fields {
		if f == "." {
			out[i] = merge.MissingInt32
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			out[i] = merge.MissingInt32
			continue
		}
		out[i] = int32(n)
	}
	return out
}

// BuildCall builds one merge.VariantCall from a single-sample VCF line's
// first genotype column. A call whose own position precedes the site's
// shared start is the continuation of an upstream deletion, so its REF
// carries no sequence guarantee and is normalized to "N" here, once, so
// the merge core never branches on it.
func BuildCall(v *Variant, nonRefToken string, plQueryIdx int, siteStart int64) *merge.VariantCall {
	call := merge.NewVariantCall(v.Pos)

	if v.Pos < siteStart {
		call.SetPlaceholderRef(true)
		call.SetRef("N")
	} else {
		call.SetRef(v.Ref)
	}

	if v.Alt != "" && v.Alt != "." {
		rawAlts := strings.Split(v.Alt, ",")
		alts := make([]merge.Allele, len(rawAlts))
		for i, a := range rawAlts {
			alts[i] = merge.ParseAllele(a, nonRefToken)
		}
		call.SetAlt(alts)
	}

	if v.SampleColumns == "" {
		return call
	}

	cols := strings.Split(v.SampleColumns, "\t")
	if len(cols) < 2 {
		return call
	}
	format := cols[0]
	sampleFields := strings.Split(cols[1], ":")

	if gtPos, ok := FormatIndex(format, "GT"); ok && gtPos < len(sampleFields) {
		if gt, ok := ParseGT(sampleFields[gtPos]); ok {
			call.SetGT(gt)
		}
	}

	if plPos, ok := FormatIndex(format, "PL"); ok && plPos < len(sampleFields) {
		if pl := ParsePL(sampleFields[plPos]); pl != nil {
			call.SetField(plQueryIdx, &merge.Field{Type: merge.Int32Type, Valid: true, I32: pl})
		}
	}

	return call
}

// BuildVariant assembles a multi-sample merge.Variant from one
// single-sample vcf.Variant per input (nil entries mark a sample with no
// call at this site, and are recorded invalid so MergeOperator skips
// them).
func BuildVariant(perSample []*Variant, nonRefToken string, plQueryIdx int) *merge.Variant {
	siteStart := int64(-1)
	for _, v := range perSample {
		if v == nil {
			continue
		}
		if siteStart == -1 || v.Pos < siteStart {
			siteStart = v.Pos
		}
	}

	calls := make([]*merge.VariantCall, len(perSample))
	for i, v := range perSample {
		if v == nil {
			c := merge.NewVariantCall(siteStart)
			c.SetValid(false)
			calls[i] = c
			continue
		}
		calls[i] = BuildCall(v, nonRefToken, plQueryIdx, siteStart)
	}

	return merge.NewVariant(siteStart, calls)
}
