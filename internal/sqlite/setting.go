package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/rpggio/timewizard/internal/repository"
)

// SettingRepository implements setting.Repository for SQLite
type SettingRepository struct {
	db *DB
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// List returns all settings ordered by key
func (r *SettingRepository) List(ctx context.Context) ([]setting.Setting, error) {
	settings := []setting.Setting{}
	if err := r.db.SelectContext(ctx, &settings, `SELECT key, value, updated_at FROM settings ORDER BY key`); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// Get retrieves a setting by key
func (r *SettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	var s setting.Setting
	err := r.db.GetContext(ctx, &s, `SELECT key, value, updated_at FROM settings WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &s, nil
}

// Put replaces or inserts a setting
func (r *SettingRepository) Put(ctx context.Context, s *setting.Setting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.Key, s.Value, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to put setting: %w", err)
	}
	return nil
}

// PutIfAbsent inserts a setting unless the key exists
func (r *SettingRepository) PutIfAbsent(ctx context.Context, s *setting.Setting) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		s.Key, s.Value, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to seed setting: %w", err)
	}
	return nil
}
