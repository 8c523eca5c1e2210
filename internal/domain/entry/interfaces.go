package entry

import (
	"context"
	"time"
)

// Repository provides persistence for time entries.
type Repository interface {
	// Upsert inserts the entry or overwrites the row with the same work date and
	// line code, then refreshes e from the stored row.
	Upsert(ctx context.Context, e *Entry) error
	// List returns entries ordered by work date, then line code.
	List(ctx context.Context, opts ListOptions) ([]Entry, error)
}

// AnchorSource supplies the current pay-week anchor.
type AnchorSource interface {
	Anchor(ctx context.Context) (time.Time, error)
}
