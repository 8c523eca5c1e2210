package setting

import "context"

// Repository provides persistence for settings.
type Repository interface {
	List(ctx context.Context) ([]Setting, error)
	Get(ctx context.Context, key string) (*Setting, error)
	Put(ctx context.Context, s *Setting) error
	PutIfAbsent(ctx context.Context, s *Setting) error
}
