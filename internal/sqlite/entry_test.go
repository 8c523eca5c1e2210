package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/stretchr/testify/require"
)

func newEntry(workDate, weekEnding, code string, st, ot int) *entry.Entry {
	now := time.Now().UTC()
	return &entry.Entry{
		WorkDate:       workDate,
		WeekEndingDate: weekEnding,
		LineCode:       code,
		STHours:        st,
		OTHours:        ot,
		IsPayWeek:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestEntryRepository_UpsertOverwrites(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	first := newEntry("2025-11-17", "2025-11-22", "VTR", 8, 2)
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotZero(t, first.ID)
	require.True(t, first.IsPayWeek)

	second := newEntry("2025-11-17", "2025-11-22", "VTR", 7, 3)
	second.CreatedAt = second.CreatedAt.Add(time.Hour)
	require.NoError(t, repo.Upsert(ctx, second))

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 7, second.STHours)
	require.Equal(t, 3, second.OTHours)
	require.True(t, second.CreatedAt.Equal(first.CreatedAt), "created_at must survive overwrite")

	entries, err := repo.List(ctx, entry.ListOptions{WeekEnding: "2025-11-22"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 10, entries[0].TotalHours())
}

func TestEntryRepository_ListOrdering(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	for _, e := range []*entry.Entry{
		newEntry("2025-11-18", "2025-11-22", "VTR", 8, 0),
		newEntry("2025-11-17", "2025-11-22", "VTR", 8, 0),
		newEntry("2025-11-17", "2025-11-22", "CLP", 2, 0),
		newEntry("2025-11-24", "2025-11-29", "VTR", 8, 0),
	} {
		require.NoError(t, repo.Upsert(ctx, e))
	}

	week, err := repo.List(ctx, entry.ListOptions{WeekEnding: "2025-11-22"})
	require.NoError(t, err)
	require.Len(t, week, 3)
	require.Equal(t, "2025-11-17", week[0].WorkDate)
	require.Equal(t, "CLP", week[0].LineCode)
	require.Equal(t, "VTR", week[1].LineCode)
	require.Equal(t, "2025-11-18", week[2].WorkDate)

	rng, err := repo.List(ctx, entry.ListOptions{StartDate: "2025-11-18", EndDate: "2025-11-24"})
	require.NoError(t, err)
	require.Len(t, rng, 2)
	require.Equal(t, "2025-11-18", rng[0].WorkDate)
	require.Equal(t, "2025-11-24", rng[1].WorkDate)
}

func TestEntryRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEntryRepository(db)

	entries, err := repo.List(context.Background(), entry.ListOptions{WeekEnding: "2030-01-05"})
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}
