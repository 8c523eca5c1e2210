package line

import "context"

// Repository provides persistence for line codes.
type Repository interface {
	List(ctx context.Context) ([]Line, error)
	Get(ctx context.Context, code string) (*Line, error)
	// Create assigns SortOrder as the current maximum plus one.
	Create(ctx context.Context, l *Line) error
	CreateIfAbsent(ctx context.Context, l *Line) error
	SetVisibility(ctx context.Context, code string, visible bool) error
	Delete(ctx context.Context, code string) error
}
