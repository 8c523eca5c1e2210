package line

import "errors"

var (
	// ErrLineNotFound indicates the line code doesn't exist.
	ErrLineNotFound = errors.New("line code not found")
	// ErrLineExists indicates the line code is already registered.
	ErrLineExists = errors.New("line code already exists")
	// ErrStandardLine indicates an attempt to delete a standard line.
	ErrStandardLine = errors.New("cannot delete standard line codes")
	// ErrInvalidInput indicates invalid line input.
	ErrInvalidInput = errors.New("invalid line input")
)
