package entry

import "time"

// Entry records the hours worked on one line code on one calendar day.
// WorkDate and LineCode form the natural key. LineCode is a plain string and may
// name a line that no longer exists.
type Entry struct {
	ID             int64     `json:"id" db:"id"`
	WorkDate       string    `json:"work_date" db:"work_date"`
	WeekEndingDate string    `json:"week_ending_date" db:"week_ending_date"`
	LineCode       string    `json:"line_code" db:"line_code"`
	STHours        int       `json:"st_hours" db:"st_hours"`
	OTHours        int       `json:"ot_hours" db:"ot_hours"`
	IsPayWeek      bool      `json:"is_pay_week" db:"is_pay_week"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// TotalHours returns straight time plus overtime.
func (e Entry) TotalHours() int {
	return e.STHours + e.OTHours
}
