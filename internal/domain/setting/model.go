package setting

import "time"

// Known setting keys.
const (
	KeyBasePayWeekEnding = "base_pay_week_ending"
	KeyPayFrequencyDays  = "pay_frequency_days"
)

// Setting is a single named configuration value.
type Setting struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Defaults returns the values seeded at initialization and served for known keys
// that are absent from the store.
func Defaults() map[string]string {
	return map[string]string{
		KeyBasePayWeekEnding: "2025-11-22",
		KeyPayFrequencyDays:  "14",
	}
}
