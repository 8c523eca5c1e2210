package note

import "errors"

var (
	// ErrNoteNotFound indicates no note exists for the work date and line code.
	ErrNoteNotFound = errors.New("note not found")
	// ErrInvalidSelector indicates a list call without exactly one of work_date,
	// week_ending, or a complete start/end range.
	ErrInvalidSelector = errors.New("must provide work_date, week_ending, or start_date/end_date")
	// ErrInvalidInput indicates a missing line code or empty note text.
	ErrInvalidInput = errors.New("invalid note input")
)
