package summary

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/payweek"
)

// EntryLister reads entries by week or range.
type EntryLister interface {
	List(ctx context.Context, opts entry.ListOptions) ([]entry.Entry, error)
}

// NoteLister reads work notes by range.
type NoteLister interface {
	List(ctx context.Context, opts note.ListOptions) ([]note.Note, error)
}

// AnchorSource supplies the current pay-week anchor.
type AnchorSource interface {
	Anchor(ctx context.Context) (time.Time, error)
}

// Service computes summaries from stored entries.
type Service struct {
	entries EntryLister
	notes   NoteLister
	anchors AnchorSource
	logger  *slog.Logger
}

// NewService creates a new summary service.
func NewService(entries EntryLister, notes NoteLister, anchors AnchorSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{entries: entries, notes: notes, anchors: anchors, logger: logger}
}

// Weekly summarizes the week ending on weekEnding. The pay-week flag is computed
// from the current anchor, not from the flags stored on the entries.
func (s *Service) Weekly(ctx context.Context, weekEnding string) (*Weekly, error) {
	end, err := payweek.ParseDate(weekEnding)
	if err != nil {
		return nil, err
	}
	key := payweek.FormatDate(end)

	entries, err := s.entries.List(ctx, entry.ListOptions{WeekEnding: key})
	if err != nil {
		return nil, fmt.Errorf("loading week %s: %w", key, err)
	}
	anchor, err := s.anchors.Anchor(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading anchor: %w", err)
	}

	w := Aggregate(key, payweek.IsPayWeek(end, anchor), entries)
	return &w, nil
}

// Range reports totals over an inclusive work-date range, with the entries and
// notes it covers.
func (s *Service) Range(ctx context.Context, startDate, endDate string) (*Report, error) {
	if startDate == "" || endDate == "" {
		return nil, entry.ErrInvalidSelector
	}
	start, err := payweek.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := payweek.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	startDate, endDate = payweek.FormatDate(start), payweek.FormatDate(end)

	entries, err := s.entries.List(ctx, entry.ListOptions{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, fmt.Errorf("loading range %s..%s: %w", startDate, endDate, err)
	}
	notes, err := s.notes.List(ctx, note.ListOptions{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, fmt.Errorf("loading notes %s..%s: %w", startDate, endDate, err)
	}

	r := &Report{
		StartDate:  startDate,
		EndDate:    endDate,
		LineTotals: map[string]Totals{},
		Entries:    entries,
		Notes:      notes,
	}
	days := map[string]struct{}{}
	for _, e := range entries {
		r.TotalST += e.STHours
		r.TotalOT += e.OTHours
		days[e.WorkDate] = struct{}{}
		addTo(r.LineTotals, e.LineCode, e)
	}
	r.TotalHours = r.TotalST + r.TotalOT
	r.DaysWorked = len(days)
	if r.DaysWorked > 0 {
		r.AvgHoursPerDay = math.Round(float64(r.TotalHours)/float64(r.DaysWorked)*100) / 100
	}
	if r.Entries == nil {
		r.Entries = []entry.Entry{}
	}
	if r.Notes == nil {
		r.Notes = []note.Note{}
	}
	return r, nil
}

// Aggregate folds entries into a weekly summary. Unknown line codes are grouped
// like any other.
func Aggregate(weekEnding string, isPayWeek bool, entries []entry.Entry) Weekly {
	w := Weekly{
		WeekEndingDate: weekEnding,
		IsPayWeek:      isPayWeek,
		LinesUsed:      []string{},
		DailyTotals:    map[string]Totals{},
		LineTotals:     map[string]Totals{},
	}
	for _, e := range entries {
		w.TotalST += e.STHours
		w.TotalOT += e.OTHours
		addTo(w.DailyTotals, e.WorkDate, e)
		addTo(w.LineTotals, e.LineCode, e)
	}
	w.TotalHours = w.TotalST + w.TotalOT

	for code := range w.LineTotals {
		w.LinesUsed = append(w.LinesUsed, code)
	}
	sort.Strings(w.LinesUsed)
	return w
}

func addTo(m map[string]Totals, key string, e entry.Entry) {
	t := m[key]
	t.add(e.STHours, e.OTHours)
	m[key] = t
}
