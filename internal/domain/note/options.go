package note

// ListOptions selects notes by exactly one of a work date, a week-ending date, or
// an inclusive work-date range. Dates are YYYY-MM-DD.
type ListOptions struct {
	WorkDate   string
	WeekEnding string
	StartDate  string
	EndDate    string
}
