package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/flexstats/internal/db"
	"github.com/vytor/flexstats/internal/logger"
)

// NewTestDB opens an in-memory match store with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	return database.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Quiet silences the default logger for the duration of the test.
func Quiet(t *testing.T) {
	t.Helper()
	prev := logger.Default()
	logger.SetDefault(logger.Discard())
	t.Cleanup(func() { logger.SetDefault(prev) })
}
