package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/timewizard/internal/domain/entry"
)

const selectEntry = `
	SELECT id, work_date, week_ending_date, line_code, st_hours, ot_hours,
	       is_pay_week, created_at, updated_at
	FROM time_entries
`

// EntryRepository implements entry.Repository for SQLite
type EntryRepository struct {
	db *DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Upsert inserts an entry or overwrites the row sharing its work date and line code.
// The original creation time and ID are kept on overwrite.
func (r *EntryRepository) Upsert(ctx context.Context, e *entry.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO time_entries (
			work_date, week_ending_date, line_code, st_hours, ot_hours,
			is_pay_week, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (work_date, line_code) DO UPDATE SET
			week_ending_date = excluded.week_ending_date,
			st_hours = excluded.st_hours,
			ot_hours = excluded.ot_hours,
			is_pay_week = excluded.is_pay_week,
			updated_at = excluded.updated_at
	`

	_, err = tx.ExecContext(ctx, query,
		e.WorkDate,
		e.WeekEndingDate,
		e.LineCode,
		e.STHours,
		e.OTHours,
		e.IsPayWeek,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert entry: %w", err)
	}

	err = tx.GetContext(ctx, e, selectEntry+` WHERE work_date = ? AND line_code = ?`, e.WorkDate, e.LineCode)
	if err != nil {
		return fmt.Errorf("failed to reload entry: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List returns entries for a week-ending date or an inclusive work-date range
func (r *EntryRepository) List(ctx context.Context, opts entry.ListOptions) ([]entry.Entry, error) {
	query := selectEntry
	var args []any

	if opts.WeekEnding != "" {
		query += ` WHERE week_ending_date = ?`
		args = append(args, opts.WeekEnding)
	} else {
		query += ` WHERE work_date >= ? AND work_date <= ?`
		args = append(args, opts.StartDate, opts.EndDate)
	}
	query += ` ORDER BY work_date, line_code`

	entries := []entry.Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}
