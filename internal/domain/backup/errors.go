package backup

import "errors"

var (
	// ErrUnsupportedFormat indicates an unknown document encoding.
	ErrUnsupportedFormat = errors.New("unsupported backup format")
	// ErrInvalidDocument indicates a document that cannot be decoded or restored.
	ErrInvalidDocument = errors.New("invalid backup document")
)
