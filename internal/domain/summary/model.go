package summary

import (
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/note"
)

// Totals accumulates straight time and overtime.
type Totals struct {
	ST    int `json:"st"`
	OT    int `json:"ot"`
	Total int `json:"total"`
}

func (t *Totals) add(st, ot int) {
	t.ST += st
	t.OT += ot
	t.Total += st + ot
}

// Weekly is the aggregate of one week's entries.
type Weekly struct {
	WeekEndingDate string            `json:"week_ending_date"`
	IsPayWeek      bool              `json:"is_pay_week"`
	TotalST        int               `json:"total_st"`
	TotalOT        int               `json:"total_ot"`
	TotalHours     int               `json:"total_hours"`
	LinesUsed      []string          `json:"lines_used"`
	DailyTotals    map[string]Totals `json:"daily_totals"`
	LineTotals     map[string]Totals `json:"line_totals"`
}

// Report is the aggregate of an inclusive work-date range.
type Report struct {
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	TotalST        int               `json:"total_st"`
	TotalOT        int               `json:"total_ot"`
	TotalHours     int               `json:"total_hours"`
	DaysWorked     int               `json:"days_worked"`
	AvgHoursPerDay float64           `json:"avg_hours_per_day"`
	LineTotals     map[string]Totals `json:"line_totals"`
	Entries        []entry.Entry     `json:"entries"`
	Notes          []note.Note       `json:"notes"`
}
