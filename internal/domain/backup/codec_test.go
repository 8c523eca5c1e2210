package backup_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *backup.Document {
	created := backup.NewTimestamp(time.Date(2025, 11, 17, 9, 30, 0, 0, time.UTC))
	return &backup.Document{
		ExportDate: backup.NewTimestamp(time.Date(2025, 11, 23, 12, 0, 0, 0, time.UTC)),
		Entries: []backup.EntryRecord{
			{ID: 1, WorkDate: "2025-11-17", WeekEndingDate: "2025-11-22", LineCode: "VTR", STHours: 8, OTHours: 2, IsPayWeek: true, CreatedAt: &created, UpdatedAt: &created},
		},
		LineCodes: []backup.LineRecord{
			{LineCode: "VTR", Label: "VTR", IsVisible: true, SortOrder: 1, CreatedAt: &created},
			{LineCode: "PROJECT-1", Label: "Project one", IsProject: true, SortOrder: 11},
		},
		Settings: []backup.SettingRecord{
			{Key: "base_pay_week_ending", Value: "2025-11-22", UpdatedAt: &created},
		},
		Notes: []backup.NoteRecord{
			{WorkDate: "2025-11-17", LineCode: "VTR", NoteText: "Pump station, \"north\" side", CreatedAt: &created, UpdatedAt: &created},
		},
	}
}

func TestCodec_EachFormatPreservesDocument(t *testing.T) {
	for _, f := range []backup.Format{backup.FormatJSON, backup.FormatYAML, backup.FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			want := sampleDocument()

			var buf bytes.Buffer
			require.NoError(t, backup.Encode(&buf, f, want))

			got, err := backup.Decode(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodec_JSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, backup.Encode(&buf, backup.FormatJSON, sampleDocument()))

	out := buf.String()
	for _, field := range []string{`"export_date"`, `"line_codes"`, `"week_ending_date"`, `"is_pay_week"`, `"sort_order"`, `"notes"`, `"note_text"`} {
		require.Contains(t, out, field)
	}
}

// A backup written by the earlier service: naive isoformat export date and SQLite
// CURRENT_TIMESTAMP columns.
const legacyExport = `{
  "export_date": "2025-11-20T10:11:12.123456",
  "entries": [
    {"id": 7, "work_date": "2025-11-17", "week_ending_date": "2025-11-22", "line_code": "VTR",
     "st_hours": 8, "ot_hours": 2, "is_pay_week": true,
     "created_at": "2025-11-17 14:03:22", "updated_at": "2025-11-18 08:00:00"}
  ],
  "line_codes": [
    {"line_code": "VTR", "label": "VTR", "is_project": false, "is_visible": true, "sort_order": 1,
     "created_at": "2025-11-01 09:00:00"}
  ],
  "settings": [
    {"key": "base_pay_week_ending", "value": "2025-11-22", "updated_at": "not a time"}
  ]
}`

func TestDecode_LegacyTimestamps(t *testing.T) {
	doc, err := backup.Decode(strings.NewReader(legacyExport), backup.FormatJSON)
	require.NoError(t, err)

	require.Equal(t, time.Date(2025, 11, 20, 10, 11, 12, 123456000, time.UTC), doc.ExportDate.Time())
	require.Len(t, doc.Entries, 1)
	require.Equal(t, time.Date(2025, 11, 17, 14, 3, 22, 0, time.UTC), doc.Entries[0].CreatedAt.Time())
	require.Equal(t, time.Date(2025, 11, 18, 8, 0, 0, 0, time.UTC), doc.Entries[0].UpdatedAt.Time())
	require.Equal(t, time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC), doc.LineCodes[0].CreatedAt.Time())

	// unparseable values decode as absent rather than failing the import
	require.NotNil(t, doc.Settings[0].UpdatedAt)
	require.True(t, doc.Settings[0].UpdatedAt.IsZero())
	require.Nil(t, doc.Notes)
}

func TestDecode_LegacyTimestampsYAML(t *testing.T) {
	in := `
export_date: 2025-11-20T10:11:12.123456
entries:
  - work_date: "2025-11-17"
    week_ending_date: "2025-11-22"
    line_code: VTR
    st_hours: 8
    created_at: 2025-11-17 14:03:22
`
	doc, err := backup.Decode(strings.NewReader(in), backup.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 11, 20, 10, 11, 12, 123456000, time.UTC), doc.ExportDate.Time())
	require.Equal(t, time.Date(2025, 11, 17, 14, 3, 22, 0, time.UTC), doc.Entries[0].CreatedAt.Time())
}

func TestTimestamp_Text(t *testing.T) {
	ts := backup.NewTimestamp(time.Date(2025, 11, 17, 9, 30, 0, 0, time.FixedZone("EST", -5*3600)))
	text, err := ts.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2025-11-17T14:30:00Z", string(text))

	var back backup.Timestamp
	require.NoError(t, back.UnmarshalText(text))
	require.True(t, back.Equal(ts))

	empty, err := backup.Timestamp{}.MarshalText()
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestDecode_Errors(t *testing.T) {
	_, err := backup.Decode(strings.NewReader(""), backup.FormatJSON)
	require.ErrorIs(t, err, backup.ErrInvalidDocument)

	_, err = backup.Decode(strings.NewReader("{not json"), backup.FormatJSON)
	require.ErrorIs(t, err, backup.ErrInvalidDocument)

	_, err = backup.Decode(strings.NewReader("{}"), backup.Format("xml"))
	require.ErrorIs(t, err, backup.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]backup.Format{
		"":     backup.FormatJSON,
		"JSON": backup.FormatJSON,
		"yml":  backup.FormatYAML,
		"yaml": backup.FormatYAML,
		"toml": backup.FormatTOML,
	}
	for in, want := range tests {
		got, err := backup.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := backup.ParseFormat("csv")
	require.ErrorIs(t, err, backup.ErrUnsupportedFormat)
}

func TestFormatFromContentType(t *testing.T) {
	require.Equal(t, backup.FormatYAML, backup.FormatFromContentType("application/yaml; charset=utf-8"))
	require.Equal(t, backup.FormatTOML, backup.FormatFromContentType("application/toml"))
	require.Equal(t, backup.FormatJSON, backup.FormatFromContentType("application/json"))
	require.Equal(t, backup.FormatJSON, backup.FormatFromContentType(""))
	require.Equal(t, "application/yaml", backup.FormatYAML.ContentType())
}
