package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteDSNAddsPragmas(t *testing.T) {
	require.Equal(t, "school.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", SQLiteDSN("school.db"))
	require.Equal(t, "file:test?mode=memory&_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("file:test?mode=memory"))
}

func TestConnectSQLiteEnablesForeignKeysAndWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "school.db")

	db, err := ConnectSQLite(path)
	require.NoError(t, err)

	var foreignKeys int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	require.Equal(t, 1, foreignKeys)

	var journalMode string
	require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&journalMode).Error)
	require.Equal(t, "wal", journalMode)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestConnectSQLiteRejectsEmptyPath(t *testing.T) {
	_, err := ConnectSQLite("  ")
	require.Error(t, err)
}
