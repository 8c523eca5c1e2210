package setting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/timewizard/internal/domain/payweek"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/rpggio/timewizard/internal/repository"
	"github.com/rpggio/timewizard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingService_GetFallsBackToDefault(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.SettingRepository{}
	repo.On("Get", ctx, setting.KeyPayFrequencyDays).Return((*setting.Setting)(nil), repository.ErrNotFound)
	repo.On("Get", ctx, "theme").Return((*setting.Setting)(nil), repository.ErrNotFound)

	svc := setting.NewService(repo, nil)

	st, err := svc.Get(ctx, setting.KeyPayFrequencyDays)
	require.NoError(t, err)
	require.Equal(t, "14", st.Value)

	_, err = svc.Get(ctx, "theme")
	require.ErrorIs(t, err, setting.ErrSettingNotFound)
}

func TestSettingService_GetPropagatesStoreFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk gone")

	repo := &mocks.SettingRepository{}
	repo.On("Get", ctx, "theme").Return((*setting.Setting)(nil), boom)

	_, err := setting.NewService(repo, nil).Get(ctx, "theme")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, setting.ErrSettingNotFound)
}

func TestSettingService_Set(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.SettingRepository{}
	repo.On("Put", ctx, mock.MatchedBy(func(s *setting.Setting) bool {
		return s.Key == "theme" && s.Value == "dark" && !s.UpdatedAt.IsZero()
	})).Return(nil)

	svc := setting.NewService(repo, nil)
	st, err := svc.Set(ctx, "theme", "dark")
	require.NoError(t, err)
	require.Equal(t, "dark", st.Value)

	_, err = svc.Set(ctx, " ", "x")
	require.ErrorIs(t, err, setting.ErrInvalidInput)
	repo.AssertNumberOfCalls(t, "Put", 1)
}

func TestSettingService_SeedDefaults(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.SettingRepository{}
	repo.On("PutIfAbsent", ctx, mock.AnythingOfType("*setting.Setting")).Return(nil)

	require.NoError(t, setting.NewService(repo, nil).SeedDefaults(ctx))
	repo.AssertNumberOfCalls(t, "PutIfAbsent", len(setting.Defaults()))
}

func TestSettingService_Anchor(t *testing.T) {
	ctx := context.Background()

	t.Run("stored", func(t *testing.T) {
		repo := &mocks.SettingRepository{}
		repo.On("Get", ctx, setting.KeyBasePayWeekEnding).Return(&setting.Setting{Key: setting.KeyBasePayWeekEnding, Value: "2025-11-29"}, nil)

		anchor, err := setting.NewService(repo, nil).Anchor(ctx)
		require.NoError(t, err)
		require.Equal(t, "2025-11-29", payweek.FormatDate(anchor))
	})

	t.Run("default", func(t *testing.T) {
		repo := &mocks.SettingRepository{}
		repo.On("Get", ctx, setting.KeyBasePayWeekEnding).Return((*setting.Setting)(nil), repository.ErrNotFound)

		anchor, err := setting.NewService(repo, nil).Anchor(ctx)
		require.NoError(t, err)
		require.True(t, anchor.Equal(payweek.DefaultAnchor))
	})

	t.Run("malformed", func(t *testing.T) {
		repo := &mocks.SettingRepository{}
		repo.On("Get", ctx, setting.KeyBasePayWeekEnding).Return(&setting.Setting{Key: setting.KeyBasePayWeekEnding, Value: "soon"}, nil)

		_, err := setting.NewService(repo, nil).Anchor(ctx)
		require.ErrorIs(t, err, setting.ErrInvalidAnchor)
	})
}
