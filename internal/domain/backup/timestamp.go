package backup

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order. Zone-less forms are read as UTC; they are
// what SQLite CURRENT_TIMESTAMP and naive isoformat() exports produce.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	time.DateOnly,
}

// Timestamp is a time field of a backup document. Values that match none of the
// accepted layouts decode as the zero Timestamp, which restore treats as absent.
type Timestamp time.Time

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Time returns the wrapped time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether t is absent.
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Equal reports whether t and u are the same instant.
func (t Timestamp) Equal(u Timestamp) bool {
	return time.Time(t).Equal(time.Time(u))
}

// MarshalText writes RFC 3339 in UTC.
func (t Timestamp) MarshalText() ([]byte, error) {
	if t.IsZero() {
		return []byte{}, nil
	}
	return []byte(time.Time(t).UTC().Format(time.RFC3339Nano)), nil
}

// UnmarshalText accepts any of timestampLayouts.
func (t *Timestamp) UnmarshalText(text []byte) error {
	*t = parseTimestamp(string(text))
	return nil
}

func parseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return Timestamp(parsed.UTC())
		}
	}
	return Timestamp{}
}
