package entry

// ListOptions selects entries either by week-ending date or by an inclusive
// work-date range. Dates are YYYY-MM-DD.
type ListOptions struct {
	WeekEnding string
	StartDate  string
	EndDate    string
}
