package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing natural key
	ErrConflict = errors.New("conflict: key already exists")
)
