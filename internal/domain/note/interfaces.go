package note

import "context"

// Repository provides persistence for work notes.
type Repository interface {
	// Upsert inserts the note or replaces the text of the note with the same work
	// date and line code, then refreshes n from the stored row.
	Upsert(ctx context.Context, n *Note) error
	// Delete removes one note. It returns repository.ErrNotFound when absent.
	Delete(ctx context.Context, workDate, lineCode string) error
	// List returns notes ordered by work date, then line code.
	List(ctx context.Context, opts ListOptions) ([]Note, error)
}
