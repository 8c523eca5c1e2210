package line

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/timewizard/internal/repository"
)

// Service handles the line registry.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new line service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines line creation inputs.
type CreateRequest struct {
	Code      string
	Label     string
	IsProject bool
}

// List returns all lines ordered by sort order.
func (s *Service) List(ctx context.Context) ([]Line, error) {
	lines, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing lines: %w", err)
	}
	return lines, nil
}

// Create registers a new visible line at the end of the display order.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Line, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrInvalidInput
	}

	label := req.Label
	if label == "" {
		label = req.Code
	}

	l := &Line{
		Code:      req.Code,
		Label:     label,
		IsProject: req.IsProject,
		IsVisible: true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrLineExists
		}
		return nil, fmt.Errorf("creating line %s: %w", req.Code, err)
	}

	s.logger.Info("line created", "line_code", l.Code, "is_project", l.IsProject, "sort_order", l.SortOrder)
	return l, nil
}

// SetVisibility shows or hides a line.
func (s *Service) SetVisibility(ctx context.Context, code string, visible bool) (*Line, error) {
	if err := s.repo.SetVisibility(ctx, code, visible); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, fmt.Errorf("updating line %s: %w", code, err)
	}
	return s.get(ctx, code)
}

// Delete removes a project line. Entries booked against it are left untouched.
func (s *Service) Delete(ctx context.Context, code string) error {
	l, err := s.get(ctx, code)
	if err != nil {
		return err
	}
	if !l.IsProject {
		return ErrStandardLine
	}

	if err := s.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLineNotFound
		}
		return fmt.Errorf("deleting line %s: %w", code, err)
	}

	s.logger.Info("line deleted", "line_code", code)
	return nil
}

// SeedStandard inserts the standard lines that are missing.
func (s *Service) SeedStandard(ctx context.Context) error {
	for _, l := range Standard(time.Now().UTC()) {
		if err := s.repo.CreateIfAbsent(ctx, &l); err != nil {
			return fmt.Errorf("seeding line %s: %w", l.Code, err)
		}
	}
	return nil
}

func (s *Service) get(ctx context.Context, code string) (*Line, error) {
	l, err := s.repo.Get(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, fmt.Errorf("getting line %s: %w", code, err)
	}
	return l, nil
}
