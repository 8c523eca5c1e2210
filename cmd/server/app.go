package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/rpggio/timewizard/internal/domain/summary"
	"github.com/rpggio/timewizard/internal/sqlite"
)

// app is an opened, migrated, and seeded database with its services.
type app struct {
	db        *sqlite.DB
	settings  *setting.Service
	lines     *line.Service
	entries   *entry.Service
	notes     *note.Service
	summaries *summary.Service
	backups   *backup.Service
}

func openApp(ctx context.Context, dbPath string, logger *slog.Logger) (*app, error) {
	if err := ensureDBDir(dbPath); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	a := &app{db: db}
	a.settings = setting.NewService(sqlite.NewSettingRepository(db), logger)
	a.lines = line.NewService(sqlite.NewLineRepository(db), logger)
	a.entries = entry.NewService(sqlite.NewEntryRepository(db), a.settings, logger)
	a.notes = note.NewService(sqlite.NewNoteRepository(db), logger)
	a.summaries = summary.NewService(a.entries, a.notes, a.settings, logger)
	a.backups = backup.NewService(sqlite.NewBackupRepository(db), logger)

	if err := a.lines.SeedStandard(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := a.settings.SeedDefaults(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
