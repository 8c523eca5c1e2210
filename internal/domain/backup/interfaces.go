package backup

import "context"

// Repository reads and restores the full persisted state.
type Repository interface {
	// Snapshot reads lines, settings, entries, and notes in one transaction. A nil
	// range selects every entry and note.
	Snapshot(ctx context.Context, rng *DateRange) (*Document, error)
	// Restore writes every present section in one transaction.
	Restore(ctx context.Context, doc *Document) error
}
