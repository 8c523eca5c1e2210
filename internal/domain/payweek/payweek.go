// Package payweek maps calendar dates onto week-ending Saturdays and the biweekly
// pay cycle. Dates are naive calendar days held as UTC midnight.
package payweek

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the wire and storage format for calendar dates.
const Layout = "2006-01-02"

// PeriodDays is the length of a pay period.
const PeriodDays = 14

// DefaultAnchor is the pay-week Saturday used when no anchor setting is stored.
var DefaultAnchor = time.Date(2025, time.November, 22, 0, 0, 0, 0, time.UTC)

// ErrInvalidDate indicates a date string that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// WeekInfo describes the pay week a work date belongs to.
type WeekInfo struct {
	WeekEndingDate string `json:"week_ending_date"`
	IsPayWeek      bool   `json:"is_pay_week"`
	WeekStart      string `json:"week_start"`
	WeekEnd        string `json:"week_end"`
}

// ParseDate parses a YYYY-MM-DD string into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(Layout)
}

// WeekEnding returns the Saturday that closes the week of workDate.
// A Saturday rolls forward to the following Saturday.
func WeekEnding(workDate time.Time) time.Time {
	d := truncate(workDate)
	days := (int(time.Saturday) - int(d.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return d.AddDate(0, 0, days)
}

// WeekStart returns the Sunday opening the week that ends on saturday.
func WeekStart(saturday time.Time) time.Time {
	return truncate(saturday).AddDate(0, 0, -6)
}

// IsPayWeek reports whether saturday falls on the biweekly cycle through anchor.
func IsPayWeek(saturday, anchor time.Time) bool {
	return floorMod(DaysBetween(anchor, saturday), PeriodDays) == 0
}

// DaysBetween returns the signed number of calendar days from a to b.
// It works on Unix seconds since a Duration saturates after about 292 years.
func DaysBetween(a, b time.Time) int {
	return int((truncate(b).Unix() - truncate(a).Unix()) / secondsPerDay)
}

// Info computes the week info for workDate against anchor.
func Info(workDate, anchor time.Time) WeekInfo {
	end := WeekEnding(workDate)
	return WeekInfo{
		WeekEndingDate: FormatDate(end),
		IsPayWeek:      IsPayWeek(end, anchor),
		WeekStart:      FormatDate(WeekStart(end)),
		WeekEnd:        FormatDate(end),
	}
}

const secondsPerDay = 24 * 60 * 60

func floorMod(a, n int) int {
	return ((a % n) + n) % n
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
