package mcp

// WeekInfoParams are the arguments of week_info.
type WeekInfoParams struct {
	WorkDate string `json:"work_date" jsonschema:"work date as YYYY-MM-DD"`
}

// ListEntriesParams are the arguments of list_entries.
type ListEntriesParams struct {
	WeekEnding string `json:"week_ending,omitempty" jsonschema:"week-ending Saturday as YYYY-MM-DD"`
	StartDate  string `json:"start_date,omitempty" jsonschema:"first work date of an inclusive range"`
	EndDate    string `json:"end_date,omitempty" jsonschema:"last work date of an inclusive range"`
}

// UpsertEntryParams are the arguments of upsert_entry.
type UpsertEntryParams struct {
	WorkDate string `json:"work_date" jsonschema:"work date as YYYY-MM-DD"`
	LineCode string `json:"line_code" jsonschema:"line code the hours are booked against"`
	STHours  int    `json:"st_hours,omitempty" jsonschema:"straight-time hours"`
	OTHours  int    `json:"ot_hours,omitempty" jsonschema:"overtime hours"`
}

// ListNotesParams are the arguments of list_notes.
type ListNotesParams struct {
	WorkDate   string `json:"work_date,omitempty" jsonschema:"single work date as YYYY-MM-DD"`
	WeekEnding string `json:"week_ending,omitempty" jsonschema:"week-ending Saturday as YYYY-MM-DD"`
	StartDate  string `json:"start_date,omitempty" jsonschema:"first work date of an inclusive range"`
	EndDate    string `json:"end_date,omitempty" jsonschema:"last work date of an inclusive range"`
}

// SaveNoteParams are the arguments of save_note.
type SaveNoteParams struct {
	WorkDate string `json:"work_date" jsonschema:"work date as YYYY-MM-DD"`
	LineCode string `json:"line_code" jsonschema:"line code the note describes"`
	NoteText string `json:"note_text" jsonschema:"note text, replaces any existing note"`
}

// DeleteNoteParams are the arguments of delete_note.
type DeleteNoteParams struct {
	WorkDate string `json:"work_date" jsonschema:"work date as YYYY-MM-DD"`
	LineCode string `json:"line_code" jsonschema:"line code of the note"`
}

// WeeklySummaryParams are the arguments of weekly_summary.
type WeeklySummaryParams struct {
	WeekEnding string `json:"week_ending" jsonschema:"week-ending Saturday as YYYY-MM-DD"`
}

// RangeReportParams are the arguments of range_report.
type RangeReportParams struct {
	StartDate string `json:"start_date" jsonschema:"first work date, inclusive"`
	EndDate   string `json:"end_date" jsonschema:"last work date, inclusive"`
}

// CreateLineParams are the arguments of create_line.
type CreateLineParams struct {
	LineCode  string `json:"line_code" jsonschema:"unique line code"`
	Label     string `json:"label,omitempty" jsonschema:"display label, defaults to the code"`
	IsProject bool   `json:"is_project,omitempty" jsonschema:"project lines can be deleted later"`
}

// SetLineVisibilityParams are the arguments of set_line_visibility.
type SetLineVisibilityParams struct {
	LineCode  string `json:"line_code" jsonschema:"line code to show or hide"`
	IsVisible bool   `json:"is_visible" jsonschema:"whether the line is offered for entry"`
}

// DeleteLineParams are the arguments of delete_line.
type DeleteLineParams struct {
	LineCode string `json:"line_code" jsonschema:"project line code to delete"`
}

// GetSettingParams are the arguments of get_setting.
type GetSettingParams struct {
	Key string `json:"key" jsonschema:"setting key"`
}

// UpdateSettingParams are the arguments of update_setting.
type UpdateSettingParams struct {
	Key   string `json:"key" jsonschema:"setting key, e.g. base_pay_week_ending"`
	Value string `json:"value" jsonschema:"new value, stored as given"`
}

// NoParams is the argument object of tools that take none.
type NoParams struct{}
