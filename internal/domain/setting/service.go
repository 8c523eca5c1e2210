package setting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/timewizard/internal/domain/payweek"
	"github.com/rpggio/timewizard/internal/repository"
)

// Service handles settings.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new settings service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all stored settings ordered by key.
func (s *Service) List(ctx context.Context) ([]Setting, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	return settings, nil
}

// Get returns the stored setting, or the default for a known key.
func (s *Service) Get(ctx context.Context, key string) (*Setting, error) {
	st, err := s.repo.Get(ctx, key)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("getting setting %s: %w", key, err)
	}
	if value, ok := Defaults()[key]; ok {
		return &Setting{Key: key, Value: value}, nil
	}
	return nil, ErrSettingNotFound
}

// Set replaces or inserts a setting. Values are stored as given.
func (s *Service) Set(ctx context.Context, key, value string) (*Setting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrInvalidInput
	}

	st := &Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	if err := s.repo.Put(ctx, st); err != nil {
		return nil, fmt.Errorf("updating setting %s: %w", key, err)
	}

	s.logger.Info("setting updated", "key", key, "value", value)
	return st, nil
}

// SeedDefaults stores the default values for keys that have none yet.
func (s *Service) SeedDefaults(ctx context.Context) error {
	now := time.Now().UTC()
	for key, value := range Defaults() {
		if err := s.repo.PutIfAbsent(ctx, &Setting{Key: key, Value: value, UpdatedAt: now}); err != nil {
			return fmt.Errorf("seeding setting %s: %w", key, err)
		}
	}
	return nil
}

// Anchor returns the configured pay-week anchor Saturday. It is read from the store
// on every call.
func (s *Service) Anchor(ctx context.Context) (time.Time, error) {
	st, err := s.Get(ctx, KeyBasePayWeekEnding)
	if err != nil {
		return time.Time{}, err
	}
	anchor, err := payweek.ParseDate(st.Value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAnchor, st.Value)
	}
	return anchor, nil
}
