package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/timewizard/internal/domain/note"
)

const selectNote = `
	SELECT id, work_date, week_ending_date, line_code, note_text, created_at, updated_at
	FROM work_notes
`

// NoteRepository implements note.Repository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Upsert inserts a note or replaces the text of the note sharing its work date and
// line code
func (r *NoteRepository) Upsert(ctx context.Context, n *note.Note) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO work_notes (work_date, week_ending_date, line_code, note_text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (work_date, line_code) DO UPDATE SET
			week_ending_date = excluded.week_ending_date,
			note_text = excluded.note_text,
			updated_at = excluded.updated_at
	`, n.WorkDate, n.WeekEndingDate, n.LineCode, n.Text, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert note: %w", err)
	}

	err = tx.GetContext(ctx, n, selectNote+` WHERE work_date = ? AND line_code = ?`, n.WorkDate, n.LineCode)
	if err != nil {
		return fmt.Errorf("failed to reload note: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes the note for a work date and line code
func (r *NoteRepository) Delete(ctx context.Context, workDate, lineCode string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM work_notes WHERE work_date = ? AND line_code = ?`, workDate, lineCode)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return requireRow(result)
}

// List returns notes for a day, a week-ending date, or an inclusive range
func (r *NoteRepository) List(ctx context.Context, opts note.ListOptions) ([]note.Note, error) {
	query := selectNote
	var args []any

	switch {
	case opts.WorkDate != "":
		query += ` WHERE work_date = ?`
		args = append(args, opts.WorkDate)
	case opts.WeekEnding != "":
		query += ` WHERE week_ending_date = ?`
		args = append(args, opts.WeekEnding)
	default:
		query += ` WHERE work_date >= ? AND work_date <= ?`
		args = append(args, opts.StartDate, opts.EndDate)
	}
	query += ` ORDER BY work_date, line_code`

	notes := []note.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}
