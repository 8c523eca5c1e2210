package line

import "time"

// Line is a category hours can be booked against.
type Line struct {
	Code      string    `json:"line_code" db:"line_code"`
	Label     string    `json:"label" db:"label"`
	IsProject bool      `json:"is_project" db:"is_project"`
	IsVisible bool      `json:"is_visible" db:"is_visible"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StandardCodes lists the fixed line codes in display order.
var StandardCodes = []string{
	"VTR",
	"GMRC",
	"CLP",
	"WACR",
	"WACR-CRD",
	"NEGS",
	"NHC",
	"NYOG",
	"PTO",
	"HOLIDAY",
}

// Standard returns the seed rows for the standard lines.
func Standard(now time.Time) []Line {
	lines := make([]Line, 0, len(StandardCodes))
	for i, code := range StandardCodes {
		lines = append(lines, Line{
			Code:      code,
			Label:     code,
			IsVisible: true,
			SortOrder: i + 1,
			CreatedAt: now,
		})
	}
	return lines
}
