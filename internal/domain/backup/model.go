package backup

// Document is the full-state export. A nil section is absent and is skipped on import.
type Document struct {
	ExportDate Timestamp       `json:"export_date" yaml:"export_date" toml:"export_date"`
	Entries    []EntryRecord   `json:"entries" yaml:"entries" toml:"entries"`
	LineCodes  []LineRecord    `json:"line_codes" yaml:"line_codes" toml:"line_codes"`
	Settings   []SettingRecord `json:"settings" yaml:"settings" toml:"settings"`
	Notes      []NoteRecord    `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
}

// EntryRecord is a time entry as written to a backup. WeekEndingDate and IsPayWeek
// are restored verbatim.
type EntryRecord struct {
	ID             int64      `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	WorkDate       string     `json:"work_date" yaml:"work_date" toml:"work_date"`
	WeekEndingDate string     `json:"week_ending_date" yaml:"week_ending_date" toml:"week_ending_date"`
	LineCode       string     `json:"line_code" yaml:"line_code" toml:"line_code"`
	STHours        int        `json:"st_hours" yaml:"st_hours" toml:"st_hours"`
	OTHours        int        `json:"ot_hours" yaml:"ot_hours" toml:"ot_hours"`
	IsPayWeek      bool       `json:"is_pay_week" yaml:"is_pay_week" toml:"is_pay_week"`
	CreatedAt      *Timestamp `json:"created_at,omitempty" yaml:"created_at,omitempty" toml:"created_at,omitempty"`
	UpdatedAt      *Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty" toml:"updated_at,omitempty"`
}

// LineRecord is a line code as written to a backup.
type LineRecord struct {
	LineCode  string     `json:"line_code" yaml:"line_code" toml:"line_code"`
	Label     string     `json:"label" yaml:"label" toml:"label"`
	IsProject bool       `json:"is_project" yaml:"is_project" toml:"is_project"`
	IsVisible bool       `json:"is_visible" yaml:"is_visible" toml:"is_visible"`
	SortOrder int        `json:"sort_order" yaml:"sort_order" toml:"sort_order"`
	CreatedAt *Timestamp `json:"created_at,omitempty" yaml:"created_at,omitempty" toml:"created_at,omitempty"`
}

// SettingRecord is a setting as written to a backup.
type SettingRecord struct {
	Key       string     `json:"key" yaml:"key" toml:"key"`
	Value     string     `json:"value" yaml:"value" toml:"value"`
	UpdatedAt *Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty" toml:"updated_at,omitempty"`
}

// NoteRecord is a work note as written to a backup.
type NoteRecord struct {
	WorkDate  string     `json:"work_date" yaml:"work_date" toml:"work_date"`
	LineCode  string     `json:"line_code" yaml:"line_code" toml:"line_code"`
	NoteText  string     `json:"note_text" yaml:"note_text" toml:"note_text"`
	CreatedAt *Timestamp `json:"created_at,omitempty" yaml:"created_at,omitempty" toml:"created_at,omitempty"`
	UpdatedAt *Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty" toml:"updated_at,omitempty"`
}

// DateRange restricts exported entries and notes to an inclusive work-date range.
type DateRange struct {
	Start string
	End   string
}

// ImportResult counts the records written by an import.
type ImportResult struct {
	Message   string `json:"message"`
	Entries   int    `json:"entries"`
	LineCodes int    `json:"line_codes"`
	Settings  int    `json:"settings"`
	Notes     int    `json:"notes"`
}
