package note

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

// Service handles work note operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new note service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// SaveRequest describes the note for one line on one day.
type SaveRequest struct {
	WorkDate string
	LineCode string
	Text     string
}

// Save creates the note for (WorkDate, LineCode) or replaces its text. Text is
// trimmed and must not be empty.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*Note, error) {
	workDate, err := payweek.ParseDate(req.WorkDate)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(req.Text)
	if strings.TrimSpace(req.LineCode) == "" || text == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	n := &Note{
		WorkDate:       payweek.FormatDate(workDate),
		WeekEndingDate: payweek.FormatDate(payweek.WeekEnding(workDate)),
		LineCode:       req.LineCode,
		Text:           text,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Upsert(ctx, n); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	s.logger.Debug("note saved", "work_date", n.WorkDate, "line_code", n.LineCode)
	return n, nil
}

// Delete removes the note for one line on one day.
func (s *Service) Delete(ctx context.Context, workDate, lineCode string) error {
	d, err := payweek.ParseDate(workDate)
	if err != nil {
		return err
	}
	if strings.TrimSpace(lineCode) == "" {
		return ErrInvalidInput
	}

	key := payweek.FormatDate(d)
	if err := s.repo.Delete(ctx, key, lineCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("deleting note: %w", err)
	}

	s.logger.Debug("note deleted", "work_date", key, "line_code", lineCode)
	return nil
}

// List returns the notes of one day, one week, or one inclusive date range.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Note, error) {
	normalized, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}
	notes, err := s.repo.List(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

func normalizeOptions(opts ListOptions) (ListOptions, error) {
	hasDay := opts.WorkDate != ""
	hasWeek := opts.WeekEnding != ""
	hasStart := opts.StartDate != ""
	hasEnd := opts.EndDate != ""

	switch {
	case hasDay && !hasWeek && !hasStart && !hasEnd:
		d, err := payweek.ParseDate(opts.WorkDate)
		if err != nil {
			return ListOptions{}, err
		}
		return ListOptions{WorkDate: payweek.FormatDate(d)}, nil
	case hasWeek && !hasDay && !hasStart && !hasEnd:
		d, err := payweek.ParseDate(opts.WeekEnding)
		if err != nil {
			return ListOptions{}, err
		}
		return ListOptions{WeekEnding: payweek.FormatDate(d)}, nil
	case hasStart && hasEnd && !hasDay && !hasWeek:
		start, err := payweek.ParseDate(opts.StartDate)
		if err != nil {
			return ListOptions{}, err
		}
		end, err := payweek.ParseDate(opts.EndDate)
		if err != nil {
			return ListOptions{}, err
		}
		return ListOptions{StartDate: payweek.FormatDate(start), EndDate: payweek.FormatDate(end)}, nil
	default:
		return ListOptions{}, ErrInvalidSelector
	}
}
