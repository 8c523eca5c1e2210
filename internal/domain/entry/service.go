package entry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/timewizard/internal/domain/payweek"
)

// Service handles time entry operations.
type Service struct {
	repo    Repository
	anchors AnchorSource
	logger  *slog.Logger
}

// NewService creates a new entry service.
func NewService(repo Repository, anchors AnchorSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, anchors: anchors, logger: logger}
}

// UpsertRequest describes hours booked on one line for one day.
type UpsertRequest struct {
	WorkDate string
	LineCode string
	STHours  int
	OTHours  int
}

// Upsert creates the entry for (WorkDate, LineCode) or overwrites the existing one.
// The week-ending date and pay-week flag are always recomputed.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (*Entry, error) {
	workDate, err := payweek.ParseDate(req.WorkDate)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.LineCode) == "" {
		return nil, ErrInvalidInput
	}

	anchor, err := s.anchors.Anchor(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading anchor: %w", err)
	}

	weekEnding := payweek.WeekEnding(workDate)
	now := time.Now().UTC()
	e := &Entry{
		WorkDate:       payweek.FormatDate(workDate),
		WeekEndingDate: payweek.FormatDate(weekEnding),
		LineCode:       req.LineCode,
		STHours:        req.STHours,
		OTHours:        req.OTHours,
		IsPayWeek:      payweek.IsPayWeek(weekEnding, anchor),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Upsert(ctx, e); err != nil {
		return nil, fmt.Errorf("upserting entry: %w", err)
	}

	s.logger.Debug("entry upserted",
		"work_date", e.WorkDate,
		"line_code", e.LineCode,
		"st_hours", e.STHours,
		"ot_hours", e.OTHours,
	)
	return e, nil
}

// List returns entries for one week or one inclusive date range.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	normalized, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return entries, nil
}

func normalizeOptions(opts ListOptions) (ListOptions, error) {
	hasWeek := opts.WeekEnding != ""
	hasStart := opts.StartDate != ""
	hasEnd := opts.EndDate != ""

	switch {
	case hasWeek && !hasStart && !hasEnd:
		d, err := payweek.ParseDate(opts.WeekEnding)
		if err != nil {
			return ListOptions{}, err
		}
		return ListOptions{WeekEnding: payweek.FormatDate(d)}, nil
	case !hasWeek && hasStart && hasEnd:
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
