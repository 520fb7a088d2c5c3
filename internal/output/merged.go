package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-vep/internal/merge"
)

// MergedVCFWriter writes merged multi-sample variants back out as VCF
// lines: one merged REF/ALT per site, with each sample's remapped GT and
// PL rendered in its own FORMAT column.
type MergedVCFWriter struct {
	w           *bufio.Writer
	chrom       string
	sampleNames []string
	plQueryIdx  int
}

// NewMergedVCFWriter creates a writer for a fixed chromosome and ordered
// sample name list (matching the call order of merge.MergedVariant.Calls).
func NewMergedVCFWriter(w io.Writer, chrom string, sampleNames []string, plQueryIdx int) *MergedVCFWriter {
	return &MergedVCFWriter{
		w:           bufio.NewWriter(w),
		chrom:       chrom,
		sampleNames: sampleNames,
		plQueryIdx:  plQueryIdx,
	}
}

// WriteHeader writes a minimal VCF header sufficient to describe the
// merged GT/PL FORMAT fields and the sample columns.
func (mw *MergedVCFWriter) WriteHeader() error {
	lines := []string{
		"##fileformat=VCFv4.2",
		`##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">`,
		`##FORMAT=<ID=PL,Number=G,Type=Integer,Description="Phred-scaled genotype likelihoods, merged allele order">`,
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\t" + strings.Join(mw.sampleNames, "\t"),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(mw.w, l); err != nil {
			return fmt.Errorf("write merged vcf header: %w", err)
		}
	}
	return nil
}

// WriteVariant writes one merged site as a VCF data line.
func (mw *MergedVCFWriter) WriteVariant(mv *merge.MergedVariant) error {
	info := "."
	if mv.NonRefPresent {
		info = "NONREF_PRESENT"
	}

	fields := []string{
		mw.chrom,
		strconv.FormatInt(mv.ColumnBegin, 10),
		".",
		mv.Ref,
		strings.Join(mv.Alt, ","),
		".",
		"PASS",
		info,
		"GT:PL",
	}

	for _, call := range mv.Calls {
		if call == nil || !call.IsValid() {
			fields = append(fields, "./.:.")
			continue
		}

		gt := "./."
		if vals := call.GT(); vals != nil {
			parts := make([]string, len(vals))
			for i, a := range vals {
				parts[i] = strconv.Itoa(a)
			}
			gt = strings.Join(parts, "/")
		}

		pl := "."
		if f, ok := call.Field(mw.plQueryIdx); ok && f != nil && f.Type == merge.Int32Type {
			parts := make([]string, len(f.I32))
			for i, v := range f.I32 {
				if v == merge.MissingInt32 {
					parts[i] = "."
				} else {
					parts[i] = strconv.Itoa(int(v))
				}
			}
			pl = strings.Join(parts, ",")
		}

		fields = append(fields, gt+":"+pl)
	}

	_, err := fmt.Fprintln(mw.w, strings.Join(fields, "\t"))
	return err
}

// Flush flushes buffered output.
func (mw *MergedVCFWriter) Flush() error {
	return mw.w.Flush()
}
