package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-vep/internal/duckdb"
	"github.com/inodb/vibe-vep/internal/genotyper"
	"github.com/inodb/vibe-vep/internal/merge"
	"github.com/inodb/vibe-vep/internal/output"
	"github.com/inodb/vibe-vep/internal/vcf"
)

// plQueryIdx is the query-field index PL is addressed at throughout the
// merge CLI; kept as a named constant rather than re-deriving it from
// QueryConfig at every call site.
const plQueryIdx = 3

// mergeWorkItem holds one site's per-sample calls, ready for merging.
type mergeWorkItem struct {
	Seq     int
	Variant *merge.Variant
}

// mergeWorkResult holds one site's merge outcome.
type mergeWorkResult struct {
	Seq int
	MV  *merge.MergedVariant
	Err error
}

// parallelMerge shards merge work across a pool of workers, each owning
// its own MergeOperator and AlleleMap (MergeOperator is not safe for
// concurrent use). Results arrive on the returned channel in arrival
// order; use orderedCollectMerge to consume them in site order.
func parallelMerge(items <-chan mergeWorkItem, cfg merge.QueryConfig, workers int, lenientRefPrefix bool) <-chan mergeWorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan mergeWorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			op := merge.NewMergeOperator(cfg)
			op.LenientRefPrefix = lenientRefPrefix
			for item := range items {
				mv, err := op.Operate(item.Variant)
				results <- mergeWorkResult{Seq: item.Seq, MV: mv, Err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// orderedCollectMerge calls fn for each result in sequence-number order,
// buffering out-of-order arrivals until the gap fills in.
func orderedCollectMerge(results <-chan mergeWorkResult, fn func(mergeWorkResult) error) error {
	pending := make(map[int]mergeWorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

// viperDefault* read a persisted default from ~/.vibe-vep.yaml (see
// initViperConfig in config.go), falling back when the key is unset. Flag
// values parsed afterward always win, since fs.Parse overwrites these
// defaults in place.
func viperDefaultString(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func viperDefaultInt(key string, fallback int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func viperDefaultBool(key string, fallback bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return fallback
}

func runMerge(args []string) int {
	initViperConfig()

	fs := flag.NewFlagSet("merge", flag.ExitOnError)

	var (
		chrom            string
		outputFile       string
		outputFormat     string
		cachePath        string
		nonRefToken      string
		workers          int
		lenientRefPrefix bool
		skipErrors       bool
	)

	fs.StringVar(&chrom, "chrom", viperDefaultString("merge.chrom", "1"), "Chromosome label to stamp on merged output")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	fs.StringVar(&outputFormat, "f", viperDefaultString("merge.output-format", "genotyper"), "Output format: genotyper, vcf")
	fs.StringVar(&outputFormat, "output-format", viperDefaultString("merge.output-format", "genotyper"), "Output format: genotyper, vcf")
	fs.StringVar(&cachePath, "cache", viperDefaultString("merge.cache", ""), "DuckDB path to cache merged sites (optional)")
	fs.StringVar(&nonRefToken, "non-ref-token", viperDefaultString("merge.non-ref-token", merge.DefaultNonRefToken), "Literal rendering of the symbolic NON_REF allele")
	fs.IntVar(&workers, "workers", viperDefaultInt("merge.workers", 0), "Number of merge workers (default: NumCPU)")
	fs.BoolVar(&lenientRefPrefix, "lenient-ref-prefix", viperDefaultBool("merge.lenient-ref-prefix", false), "Drop calls whose REF conflicts with the merged REF instead of aborting the site")
	fs.BoolVar(&skipErrors, "skip-errors", viperDefaultBool("merge.skip-errors", false), "Skip sites that fail to merge instead of aborting the run")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Merge per-sample variant calls sharing a start position into joint sites.

Usage:
  vibe-vep merge [options] <input-vcf> [input-vcf ...]

Each input is treated as one sample's calls; inputs are read in lockstep,
one line at a time, so they must already be position-synchronized
(e.g. single-sample gVCFs produced against the same reference windows).

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one input VCF required\n\n")
		fs.Usage()
		return ExitUsage
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not initialize logger: %v\n", err)
		return ExitError
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	inputs := fs.Args()
	parsers := make([]*vcf.Parser, len(inputs))
	sampleNames := make([]string, len(inputs))
	for i, path := range inputs {
		p, err := vcf.NewParser(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
			return ExitError
		}
		defer p.Close()
		parsers[i] = p
		sampleNames[i] = filepath.Base(path)
	}

	var out *os.File
	if outputFile == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return ExitError
		}
		defer out.Close()
	}

	var store *duckdb.Store
	if cachePath != "" {
		store, err = duckdb.Open(cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening merge cache: %v\n", err)
			return ExitError
		}
		defer store.Close()
	}

	cfg := merge.NewVCFQueryConfig(nonRefToken)

	var vcfWriter *output.MergedVCFWriter
	var genotyperConsumer *genotyper.DummyGenotyper
	switch outputFormat {
	case "vcf":
		vcfWriter = output.NewMergedVCFWriter(out, chrom, sampleNames, plQueryIdx)
		if err := vcfWriter.WriteHeader(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing header: %v\n", err)
			return ExitError
		}
	case "genotyper":
		genotyperConsumer = genotyper.New(nonRefToken)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", outputFormat)
		return ExitError
	}

	items := make(chan mergeWorkItem, 2*workerCountOrDefault(workers))
	go func() {
		defer close(items)
		seq := 0
		for {
			perSample := make([]*vcf.Variant, len(parsers))
			anyLive := false
			for i, p := range parsers {
				v, err := p.Next()
				if err != nil {
					sugar.Errorw("read variant", "sample", sampleNames[i], "err", err)
					continue
				}
				perSample[i] = v
				if v != nil {
					anyLive = true
				}
			}
			if !anyLive {
				return
			}

			items <- mergeWorkItem{
				Seq:     seq,
				Variant: vcf.BuildVariant(perSample, nonRefToken, plQueryIdx),
			}
			seq++
		}
	}()

	results := parallelMerge(items, cfg, workers, lenientRefPrefix)

	var cacheBatch []*merge.MergedVariant
	var runErr error

	err = orderedCollectMerge(results, func(r mergeWorkResult) error {
		if r.Err != nil {
			sugar.Errorw("merge site failed",
				"seq", r.Seq,
				"err", r.Err,
			)
			if skipErrors {
				return nil
			}
			return r.Err
		}

		switch outputFormat {
		case "vcf":
			if err := vcfWriter.WriteVariant(r.MV); err != nil {
				return fmt.Errorf("write merged vcf: %w", err)
			}
		case "genotyper":
			medians := genotyperConsumer.Medians(r.MV, plQueryIdx)
			if err := genotyperConsumer.WriteLine(out, r.MV, medians); err != nil {
				return fmt.Errorf("write genotyper line: %w", err)
			}
		}

		if store != nil {
			cacheBatch = append(cacheBatch, r.MV)
		}

		return nil
	})
	if err != nil {
		runErr = err
	}

	if vcfWriter != nil {
		if flushErr := vcfWriter.Flush(); flushErr != nil && runErr == nil {
			runErr = flushErr
		}
	}

	if store != nil && len(cacheBatch) > 0 {
		if err := store.WriteMergeResults(chrom, cacheBatch); err != nil {
			sugar.Errorw("cache merged sites", "err", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return ExitError
	}

	return ExitSuccess
}

func workerCountOrDefault(w int) int {
	if w <= 0 {
		return runtime.NumCPU()
	}
	return w
}
