package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/rpggio/timewizard/internal/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection pool
type DB struct {
	*sqlx.DB
}

// New opens a SQLite database. In-memory databases are pinned to one connection
// so every statement sees the same database.
func New(dataSourceName string) (*DB, error) {
	db, err := sqlx.Open("sqlite", withPragmas(dataSourceName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if isMemory(dataSourceName) {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

// Migrate applies the embedded goose migrations
func (db *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB.DB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// withPragmas turns a plain file path into a URI that sets a busy timeout and WAL
// journaling on every pooled connection.
func withPragmas(dsn string) string {
	if isMemory(dsn) || strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, "?") {
		return dsn
	}
	return "file:" + dsn + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

var (
	_ entry.Repository   = (*EntryRepository)(nil)
	_ line.Repository    = (*LineRepository)(nil)
	_ setting.Repository = (*SettingRepository)(nil)
	_ note.Repository    = (*NoteRepository)(nil)
	_ backup.Repository  = (*BackupRepository)(nil)
)
