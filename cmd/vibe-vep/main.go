// Package main provides the vibe-vep command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Global flags
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	// Parse global flags first
	flag.Parse()

	if showVersion {
		fmt.Printf("vibe-vep version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	// Check for subcommand
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "merge":
		return runMerge(args[1:])
	case "config":
		return runConfigCmd(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `vibe-vep - Multi-sample variant call merger

Usage:
  vibe-vep [options] <command> [arguments]

Commands:
  merge       Merge per-sample variant calls into joint multi-sample sites
  config      View or set persisted merge defaults (~/.vibe-vep.yaml)
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Merge single-sample gVCFs into joint sites, one genotyper row per site
  vibe-vep merge sample1.vcf sample2.vcf sample3.vcf

  # Merge into a multi-sample VCF instead, caching results in DuckDB
  vibe-vep merge -f vcf -o merged.vcf -cache merged.duckdb sample1.vcf sample2.vcf

  # Pin a default non-ref token or worker count across invocations
  vibe-vep config set merge.non-ref-token '<NON_REF>'

For more information on a command, use:
  vibe-vep <command> --help
`)
}
