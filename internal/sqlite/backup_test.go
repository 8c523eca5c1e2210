package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/stretchr/testify/require"
)

func TestBackupRepository_SnapshotRange(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	seedLines(t, NewLineRepository(db))

	entries := NewEntryRepository(db)
	require.NoError(t, entries.Upsert(ctx, newEntry("2025-11-17", "2025-11-22", "VTR", 8, 0)))
	require.NoError(t, entries.Upsert(ctx, newEntry("2025-12-01", "2025-12-06", "VTR", 8, 0)))

	repo := NewBackupRepository(db)

	all, err := repo.Snapshot(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all.Entries, 2)
	require.Len(t, all.LineCodes, 10)
	require.Empty(t, all.Settings)
	require.NotNil(t, all.LineCodes[0].CreatedAt)
	require.NotNil(t, all.Notes)

	ranged, err := repo.Snapshot(ctx, &backup.DateRange{Start: "2025-11-01", End: "2025-11-30"})
	require.NoError(t, err)
	require.Len(t, ranged.Entries, 1)
	require.Equal(t, "2025-11-17", ranged.Entries[0].WorkDate)
	require.Len(t, ranged.LineCodes, 10)
}

func TestBackupRepository_RestoreVerbatim(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewBackupRepository(db)

	entries := NewEntryRepository(db)
	require.NoError(t, entries.Upsert(ctx, newEntry("2025-11-17", "2025-11-22", "VTR", 1, 1)))

	doc := &backup.Document{
		LineCodes: []backup.LineRecord{{LineCode: "PROJECT-9", IsProject: true, IsVisible: false, SortOrder: 42}},
		Settings:  []backup.SettingRecord{{Key: setting.KeyBasePayWeekEnding, Value: "2025-11-29"}},
		Entries: []backup.EntryRecord{
			// stored flags are kept even when they disagree with the anchor
			{WorkDate: "2025-11-17", WeekEndingDate: "2025-11-22", LineCode: "VTR", STHours: 6, OTHours: 0, IsPayWeek: false},
			{WorkDate: "2025-11-18", WeekEndingDate: "2025-11-22", LineCode: "PROJECT-9", STHours: 2, OTHours: 1, IsPayWeek: true},
		},
	}
	require.NoError(t, repo.Restore(ctx, doc))

	week, err := entries.List(ctx, entry.ListOptions{WeekEnding: "2025-11-22"})
	require.NoError(t, err)
	require.Len(t, week, 2)
	require.Equal(t, 6, week[0].STHours)
	require.False(t, week[0].IsPayWeek)
	require.True(t, week[1].IsPayWeek)

	l, err := NewLineRepository(db).Get(ctx, "PROJECT-9")
	require.NoError(t, err)
	require.Equal(t, "PROJECT-9", l.Label)
	require.Equal(t, 42, l.SortOrder)
	require.False(t, l.IsVisible)

	s, err := NewSettingRepository(db).Get(ctx, setting.KeyBasePayWeekEnding)
	require.NoError(t, err)
	require.Equal(t, "2025-11-29", s.Value)
}

func TestBackupRepository_RestoreIsAtomic(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewBackupRepository(db)

	created := backup.NewTimestamp(time.Now().UTC())
	doc := &backup.Document{
		LineCodes: []backup.LineRecord{{LineCode: "PROJECT-1", IsProject: true, CreatedAt: &created}},
		Entries: []backup.EntryRecord{
			{WorkDate: "2025-11-17", WeekEndingDate: "2025-11-22", LineCode: "PROJECT-1", STHours: 4},
		},
	}
	require.NoError(t, repo.Restore(ctx, doc))

	_, err := db.ExecContext(ctx, `CREATE TRIGGER reject_bad BEFORE INSERT ON time_entries
		WHEN NEW.line_code = 'BAD' BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	bad := &backup.Document{
		LineCodes: []backup.LineRecord{{LineCode: "PROJECT-2", IsProject: true}},
		Entries: []backup.EntryRecord{
			{WorkDate: "2025-11-18", WeekEndingDate: "2025-11-22", LineCode: "BAD", STHours: 4},
		},
	}
	require.Error(t, repo.Restore(ctx, bad))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM line_codes WHERE line_code = 'PROJECT-2'`))
	require.Zero(t, count)
}

func TestBackupRepository_NotesRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	notes := NewNoteRepository(db)
	require.NoError(t, notes.Upsert(ctx, newNote("2025-11-17", "2025-11-22", "VTR", "in range")))
	require.NoError(t, notes.Upsert(ctx, newNote("2025-12-01", "2025-12-06", "VTR", "out of range")))

	repo := NewBackupRepository(db)
	ranged, err := repo.Snapshot(ctx, &backup.DateRange{Start: "2025-11-01", End: "2025-11-30"})
	require.NoError(t, err)
	require.Len(t, ranged.Notes, 1)
	require.Equal(t, "in range", ranged.Notes[0].NoteText)
	require.NotNil(t, ranged.Notes[0].CreatedAt)

	// legacy timestamps decode as zero and fall back to the restore time
	restored := NewTestDB(t)
	doc := &backup.Document{Notes: []backup.NoteRecord{
		{WorkDate: "2025-11-22", LineCode: "GMRC", NoteText: "saturday", CreatedAt: &backup.Timestamp{}},
	}}
	require.NoError(t, NewBackupRepository(restored).Restore(ctx, doc))

	got, err := NewNoteRepository(restored).List(ctx, note.ListOptions{WeekEnding: "2025-11-29"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "saturday", got[0].Text)
	require.False(t, got[0].CreatedAt.IsZero())
}
