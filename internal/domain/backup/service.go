package backup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/timewizard/internal/domain/payweek"
)

// Service exports and imports the full state.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new backup service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Export returns all lines and settings plus entries and notes. Entries and notes
// are restricted to [startDate, endDate] only when both bounds are given.
func (s *Service) Export(ctx context.Context, startDate, endDate string) (*Document, error) {
	var rng *DateRange
	if startDate != "" && endDate != "" {
		start, err := payweek.ParseDate(startDate)
		if err != nil {
			return nil, err
		}
		end, err := payweek.ParseDate(endDate)
		if err != nil {
			return nil, err
		}
		rng = &DateRange{Start: payweek.FormatDate(start), End: payweek.FormatDate(end)}
	}

	doc, err := s.repo.Snapshot(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("exporting: %w", err)
	}
	doc.ExportDate = NewTimestamp(time.Now().UTC())
	if doc.Entries == nil {
		doc.Entries = []EntryRecord{}
	}
	if doc.LineCodes == nil {
		doc.LineCodes = []LineRecord{}
	}
	if doc.Settings == nil {
		doc.Settings = []SettingRecord{}
	}
	if doc.Notes == nil {
		doc.Notes = []NoteRecord{}
	}
	return doc, nil
}

// Import restores every section present in doc. Either all records are written or
// none are.
func (s *Service) Import(ctx context.Context, doc *Document) (*ImportResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	if err := s.repo.Restore(ctx, doc); err != nil {
		return nil, fmt.Errorf("importing: %w", err)
	}

	res := &ImportResult{
		Message:   "Data imported successfully",
		Entries:   len(doc.Entries),
		LineCodes: len(doc.LineCodes),
		Settings:  len(doc.Settings),
		Notes:     len(doc.Notes),
	}
	s.logger.Info("backup imported",
		"entries", res.Entries,
		"line_codes", res.LineCodes,
		"settings", res.Settings,
		"notes", res.Notes,
	)
	return res, nil
}

func validate(doc *Document) error {
	for i, l := range doc.LineCodes {
		if strings.TrimSpace(l.LineCode) == "" {
			return fmt.Errorf("%w: line_codes[%d] has no line_code", ErrInvalidDocument, i)
		}
	}
	for i, st := range doc.Settings {
		if strings.TrimSpace(st.Key) == "" {
			return fmt.Errorf("%w: settings[%d] has no key", ErrInvalidDocument, i)
		}
	}
	for i, e := range doc.Entries {
		if strings.TrimSpace(e.LineCode) == "" || e.WeekEndingDate == "" {
			return fmt.Errorf("%w: entries[%d] is incomplete", ErrInvalidDocument, i)
		}
		d, err := payweek.ParseDate(e.WorkDate)
		if err != nil {
			return fmt.Errorf("%w: entries[%d]: %v", ErrInvalidDocument, i, err)
		}
		doc.Entries[i].WorkDate = payweek.FormatDate(d)
	}
	for i, n := range doc.Notes {
		if strings.TrimSpace(n.LineCode) == "" {
			return fmt.Errorf("%w: notes[%d] has no line_code", ErrInvalidDocument, i)
		}
		d, err := payweek.ParseDate(n.WorkDate)
		if err != nil {
			return fmt.Errorf("%w: notes[%d]: %v", ErrInvalidDocument, i, err)
		}
		doc.Notes[i].WorkDate = payweek.FormatDate(d)
	}
	return nil
}
