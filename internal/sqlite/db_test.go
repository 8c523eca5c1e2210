package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.Migrate(context.Background())
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"time_entries",
		"line_codes",
		"settings",
		"work_notes",
		"goose_db_version",
	}

	for _, table := range tables {
		var count int
		err := db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestMigrations_Idempotent verifies a second run is a no-op
func TestMigrations_Idempotent(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.Migrate(context.Background()))
}

// TestTimeEntriesUniqueKey verifies the natural key constraint
func TestTimeEntriesUniqueKey(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insert := `INSERT INTO time_entries (work_date, week_ending_date, line_code, st_hours, ot_hours, is_pay_week)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := db.ExecContext(ctx, insert, "2025-11-17", "2025-11-22", "VTR", 8, 0, 1)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "2025-11-17", "2025-11-22", "VTR", 4, 0, 1)
	require.Error(t, err)
	require.True(t, isUniqueViolation(err))

	_, err = db.ExecContext(ctx, insert, "2025-11-17", "2025-11-22", "GMRC", 4, 0, 1)
	require.NoError(t, err)
}

func TestNew_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timewizard.db")

	db, err := New(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate(context.Background()))

	var mode string
	require.NoError(t, db.Get(&mode, "PRAGMA journal_mode"))
	require.Equal(t, "wal", mode)
}

func TestWithPragmas(t *testing.T) {
	require.Equal(t, ":memory:", withPragmas(":memory:"))
	require.Equal(t, "file:x.db?mode=ro", withPragmas("file:x.db?mode=ro"))
	require.Equal(t, "file:data/x.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", withPragmas("data/x.db"))
}
