package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/repository"
	"github.com/stretchr/testify/require"
)

func seedLines(t *testing.T, repo *LineRepository) {
	t.Helper()
	for _, l := range line.Standard(time.Now().UTC()) {
		require.NoError(t, repo.CreateIfAbsent(context.Background(), &l))
	}
}

func TestLineRepository_SeedIsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLineRepository(db)

	seedLines(t, repo)
	seedLines(t, repo)

	lines, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, len(line.StandardCodes))
	for i, l := range lines {
		require.Equal(t, line.StandardCodes[i], l.Code)
		require.Equal(t, i+1, l.SortOrder)
		require.True(t, l.IsVisible)
		require.False(t, l.IsProject)
	}
}

func TestLineRepository_CreateAppends(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLineRepository(db)
	ctx := context.Background()

	first := &line.Line{Code: "PROJECT-1", Label: "First", IsProject: true, IsVisible: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, first))
	require.Equal(t, 1, first.SortOrder)

	seedLines(t, repo)

	second := &line.Line{Code: "PROJECT-2", Label: "Second", IsProject: true, IsVisible: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, second))
	require.Equal(t, 11, second.SortOrder)

	dup := &line.Line{Code: "PROJECT-1", Label: "Dup", IsProject: true, CreatedAt: time.Now().UTC()}
	require.ErrorIs(t, repo.Create(ctx, dup), repository.ErrConflict)

	got, err := repo.Get(ctx, "PROJECT-2")
	require.NoError(t, err)
	require.Equal(t, "Second", got.Label)
	require.True(t, got.IsProject)
}

func TestLineRepository_VisibilityAndDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLineRepository(db)
	ctx := context.Background()
	seedLines(t, repo)

	require.NoError(t, repo.SetVisibility(ctx, "NHC", false))
	got, err := repo.Get(ctx, "NHC")
	require.NoError(t, err)
	require.False(t, got.IsVisible)

	require.ErrorIs(t, repo.SetVisibility(ctx, "MISSING", true), repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "NHC"))
	_, err = repo.Get(ctx, "NHC")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "NHC"), repository.ErrNotFound)
}
