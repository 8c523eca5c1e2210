package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/payweek"
	"github.com/rpggio/timewizard/internal/domain/setting"
)

// BackupRepository implements backup.Repository for SQLite
type BackupRepository struct {
	db *DB
}

// NewBackupRepository creates a new BackupRepository
func NewBackupRepository(db *DB) *BackupRepository {
	return &BackupRepository{db: db}
}

// Snapshot reads lines, settings, entries, and notes from a single transaction
func (r *BackupRepository) Snapshot(ctx context.Context, rng *backup.DateRange) (*backup.Document, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lines := []line.Line{}
	if err := tx.SelectContext(ctx, &lines, selectLine+` ORDER BY sort_order, line_code`); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	settings := []setting.Setting{}
	if err := tx.SelectContext(ctx, &settings, `SELECT key, value, updated_at FROM settings ORDER BY key`); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	where, args := "", []any{}
	if rng != nil {
		where = ` WHERE work_date >= ? AND work_date <= ?`
		args = append(args, rng.Start, rng.End)
	}
	const order = ` ORDER BY work_date, line_code`

	entries := []entry.Entry{}
	if err := tx.SelectContext(ctx, &entries, selectEntry+where+order, args...); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	notes := []note.Note{}
	if err := tx.SelectContext(ctx, &notes, selectNote+where+order, args...); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	doc := &backup.Document{
		Entries:   make([]backup.EntryRecord, 0, len(entries)),
		LineCodes: make([]backup.LineRecord, 0, len(lines)),
		Settings:  make([]backup.SettingRecord, 0, len(settings)),
		Notes:     make([]backup.NoteRecord, 0, len(notes)),
	}
	for _, l := range lines {
		doc.LineCodes = append(doc.LineCodes, backup.LineRecord{
			LineCode:  l.Code,
			Label:     l.Label,
			IsProject: l.IsProject,
			IsVisible: l.IsVisible,
			SortOrder: l.SortOrder,
			CreatedAt: timePtr(l.CreatedAt),
		})
	}
	for _, s := range settings {
		doc.Settings = append(doc.Settings, backup.SettingRecord{
			Key:       s.Key,
			Value:     s.Value,
			UpdatedAt: timePtr(s.UpdatedAt),
		})
	}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, backup.EntryRecord{
			ID:             e.ID,
			WorkDate:       e.WorkDate,
			WeekEndingDate: e.WeekEndingDate,
			LineCode:       e.LineCode,
			STHours:        e.STHours,
			OTHours:        e.OTHours,
			IsPayWeek:      e.IsPayWeek,
			CreatedAt:      timePtr(e.CreatedAt),
			UpdatedAt:      timePtr(e.UpdatedAt),
		})
	}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, backup.NoteRecord{
			WorkDate:  n.WorkDate,
			LineCode:  n.LineCode,
			NoteText:  n.Text,
			CreatedAt: timePtr(n.CreatedAt),
			UpdatedAt: timePtr(n.UpdatedAt),
		})
	}

	return doc, nil
}

// Restore upserts every section of doc by natural key in one transaction
func (r *BackupRepository) Restore(ctx context.Context, doc *backup.Document) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	if err := restoreLines(ctx, tx, doc.LineCodes, now); err != nil {
		return err
	}
	if err := restoreSettings(ctx, tx, doc.Settings, now); err != nil {
		return err
	}
	if err := restoreEntries(ctx, tx, doc.Entries, now); err != nil {
		return err
	}
	if err := restoreNotes(ctx, tx, doc.Notes, now); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func restoreLines(ctx context.Context, tx *sqlx.Tx, records []backup.LineRecord, now time.Time) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO line_codes (line_code, label, is_project, is_visible, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (line_code) DO UPDATE SET
			label = excluded.label,
			is_project = excluded.is_project,
			is_visible = excluded.is_visible,
			sort_order = excluded.sort_order
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare line restore: %w", err)
	}
	defer stmt.Close()

	for _, l := range records {
		label := l.Label
		if label == "" {
			label = l.LineCode
		}
		if _, err := stmt.ExecContext(ctx, l.LineCode, label, l.IsProject, l.IsVisible, l.SortOrder, timeOr(l.CreatedAt, now)); err != nil {
			return fmt.Errorf("failed to restore line %s: %w", l.LineCode, err)
		}
	}
	return nil
}

func restoreSettings(ctx context.Context, tx *sqlx.Tx, records []backup.SettingRecord, now time.Time) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare setting restore: %w", err)
	}
	defer stmt.Close()

	for _, s := range records {
		if _, err := stmt.ExecContext(ctx, s.Key, s.Value, now); err != nil {
			return fmt.Errorf("failed to restore setting %s: %w", s.Key, err)
		}
	}
	return nil
}

func restoreEntries(ctx context.Context, tx *sqlx.Tx, records []backup.EntryRecord, now time.Time) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.PreparexContext(ctx, `
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
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry restore: %w", err)
	}
	defer stmt.Close()

	for _, e := range records {
		_, err := stmt.ExecContext(ctx,
			e.WorkDate,
			e.WeekEndingDate,
			e.LineCode,
			e.STHours,
			e.OTHours,
			e.IsPayWeek,
			timeOr(e.CreatedAt, now),
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to restore entry %s/%s: %w", e.WorkDate, e.LineCode, err)
		}
	}
	return nil
}

// restoreNotes derives each week ending from the work date, since notes carry
// no stored week.
func restoreNotes(ctx context.Context, tx *sqlx.Tx, records []backup.NoteRecord, now time.Time) error {
	if len(records) == 0 {
		return nil
	}
	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO work_notes (work_date, week_ending_date, line_code, note_text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (work_date, line_code) DO UPDATE SET
			week_ending_date = excluded.week_ending_date,
			note_text = excluded.note_text,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare note restore: %w", err)
	}
	defer stmt.Close()

	for _, n := range records {
		workDate, err := payweek.ParseDate(n.WorkDate)
		if err != nil {
			return fmt.Errorf("failed to restore note %s/%s: %w", n.WorkDate, n.LineCode, err)
		}
		_, err = stmt.ExecContext(ctx,
			payweek.FormatDate(workDate),
			payweek.FormatDate(payweek.WeekEnding(workDate)),
			n.LineCode,
			n.NoteText,
			timeOr(n.CreatedAt, now),
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to restore note %s/%s: %w", n.WorkDate, n.LineCode, err)
		}
	}
	return nil
}

func timePtr(t time.Time) *backup.Timestamp {
	if t.IsZero() {
		return nil
	}
	ts := backup.NewTimestamp(t)
	return &ts
}

func timeOr(t *backup.Timestamp, fallback time.Time) time.Time {
	if t == nil || t.IsZero() {
		return fallback
	}
	return t.Time().UTC()
}
