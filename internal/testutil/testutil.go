// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"fina/internal/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated, private in-memory SQLite database.
// The pool is pinned to one connection because every SQLite memory
// connection is its own database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}
