package duckdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openInMemory opens a scratch in-memory Store for a single test.
func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_InMemory(t *testing.T) {
	s := openInMemory(t)
	require.NotNil(t, s.DB())
}
