package entry

import "errors"

var (
	// ErrInvalidSelector indicates a list call without exactly one of week_ending
	// or a complete start/end range.
	ErrInvalidSelector = errors.New("must provide week_ending or start_date/end_date")
	// ErrInvalidInput indicates invalid entry input.
	ErrInvalidInput = errors.New("invalid entry input")
)
