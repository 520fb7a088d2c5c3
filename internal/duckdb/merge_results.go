package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-vep/internal/merge"
)

// ensureMergeSchema creates the merge_results table if it doesn't exist.
// Called lazily from WriteMergeResults and LookupMergeResult so stores
// opened before the merge command existed don't pay for an unused table.
func (s *Store) ensureMergeSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS merge_results (
		chrom VARCHAR,
		pos BIGINT,
		ref VARCHAR,
		alt VARCHAR,
		non_ref_present BOOLEAN,
		num_samples INTEGER,
		PRIMARY KEY (chrom, pos, ref)
	)`)
	return err
}

// WriteMergeResults batch-inserts merged sites into DuckDB using the
// Appender API on a dedicated connection.
func (s *Store) WriteMergeResults(chrom string, results []*merge.MergedVariant) error {
	if len(results) == 0 {
		return nil
	}

	if err := s.ensureMergeSchema(); err != nil {
		return fmt.Errorf("ensure merge schema: %w", err)
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "merge_results")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, mv := range results {
		numSamples := 0
		for _, c := range mv.Calls {
			if c != nil && c.IsValid() {
				numSamples++
			}
		}

		if err := appender.AppendRow(
			chrom, mv.ColumnBegin, mv.Ref, strings.Join(mv.Alt, ","),
			mv.NonRefPresent, int32(numSamples),
		); err != nil {
			return fmt.Errorf("append merge result: %w", err)
		}
	}

	return appender.Flush()
}

// LookupMergeResult queries DuckDB for a previously cached merged site.
func (s *Store) LookupMergeResult(chrom string, pos int64, ref string) (alt string, nonRefPresent bool, numSamples int, found bool, err error) {
	if err := s.ensureMergeSchema(); err != nil {
		return "", false, 0, false, fmt.Errorf("ensure merge schema: %w", err)
	}

	row := s.db.QueryRow(`SELECT alt, non_ref_present, num_samples FROM merge_results
		WHERE chrom=? AND pos=? AND ref=?`, chrom, pos, ref)

	var ns int32
	if scanErr := row.Scan(&alt, &nonRefPresent, &ns); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return "", false, 0, false, nil
		}
		return "", false, 0, false, fmt.Errorf("lookup merge result: %w", scanErr)
	}

	return alt, nonRefPresent, int(ns), true, nil
}
