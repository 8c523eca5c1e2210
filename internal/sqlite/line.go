package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/repository"
)

const selectLine = `
	SELECT line_code, label, is_project, is_visible, sort_order, created_at
	FROM line_codes
`

// LineRepository implements line.Repository for SQLite
type LineRepository struct {
	db *DB
}

// NewLineRepository creates a new LineRepository
func NewLineRepository(db *DB) *LineRepository {
	return &LineRepository{db: db}
}

// List returns all lines in display order
func (r *LineRepository) List(ctx context.Context) ([]line.Line, error) {
	lines := []line.Line{}
	if err := r.db.SelectContext(ctx, &lines, selectLine+` ORDER BY sort_order, line_code`); err != nil {
		return nil, fmt.Errorf("failed to list lines: %w", err)
	}
	return lines, nil
}

// Get retrieves a line by code
func (r *LineRepository) Get(ctx context.Context, code string) (*line.Line, error) {
	var l line.Line
	err := r.db.GetContext(ctx, &l, selectLine+` WHERE line_code = ?`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get line: %w", err)
	}
	return &l, nil
}

// Create inserts a line after the current last sort order
func (r *LineRepository) Create(ctx context.Context, l *line.Line) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxOrder int
	if err := tx.GetContext(ctx, &maxOrder, `SELECT COALESCE(MAX(sort_order), 0) FROM line_codes`); err != nil {
		return fmt.Errorf("failed to read sort order: %w", err)
	}
	l.SortOrder = maxOrder + 1

	_, err = tx.ExecContext(ctx, `
		INSERT INTO line_codes (line_code, label, is_project, is_visible, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, l.Code, l.Label, l.IsProject, l.IsVisible, l.SortOrder, l.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create line: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateIfAbsent inserts a line with its given sort order unless the code exists
func (r *LineRepository) CreateIfAbsent(ctx context.Context, l *line.Line) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO line_codes (line_code, label, is_project, is_visible, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, l.Code, l.Label, l.IsProject, l.IsVisible, l.SortOrder, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to seed line: %w", err)
	}
	return nil
}

// SetVisibility updates the visibility flag
func (r *LineRepository) SetVisibility(ctx context.Context, code string, visible bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE line_codes SET is_visible = ? WHERE line_code = ?`, visible, code)
	if err != nil {
		return fmt.Errorf("failed to update line: %w", err)
	}
	return requireRow(result)
}

// Delete removes a line
func (r *LineRepository) Delete(ctx context.Context, code string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM line_codes WHERE line_code = ?`, code)
	if err != nil {
		return fmt.Errorf("failed to delete line: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
