package note

import "time"

// Note is free text attached to the hours of one line code on one day.
// WorkDate and LineCode form the natural key, the same key as a time entry, but a
// note does not require the entry to exist.
type Note struct {
	ID             int64     `json:"id" db:"id"`
	WorkDate       string    `json:"work_date" db:"work_date"`
	WeekEndingDate string    `json:"week_ending_date" db:"week_ending_date"`
	LineCode       string    `json:"line_code" db:"line_code"`
	Text           string    `json:"note_text" db:"note_text"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
