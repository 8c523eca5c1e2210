package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/payweek"
	"github.com/rpggio/timewizard/internal/domain/setting"
)

// APIError represents an MCP tool error payload.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to tool error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, payweek.ErrInvalidDate):
		return &APIError{Code: "INVALID_DATE", Message: err.Error(), RecoveryHint: "Use YYYY-MM-DD"}
	case errors.Is(err, entry.ErrInvalidSelector):
		return &APIError{Code: "MISSING_SELECTOR", Message: err.Error(), RecoveryHint: "Pass week_ending, or both start_date and end_date"}
	case errors.Is(err, note.ErrInvalidSelector):
		return &APIError{Code: "MISSING_SELECTOR", Message: err.Error(), RecoveryHint: "Pass work_date, week_ending, or both start_date and end_date"}
	case errors.Is(err, entry.ErrInvalidInput), errors.Is(err, line.ErrInvalidInput),
		errors.Is(err, setting.ErrInvalidInput), errors.Is(err, note.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, line.ErrLineNotFound):
		return &APIError{Code: "LINE_NOT_FOUND", Message: "line code not found", RecoveryHint: "Call list_lines"}
	case errors.Is(err, line.ErrLineExists):
		return &APIError{Code: "LINE_EXISTS", Message: "line code already exists"}
	case errors.Is(err, line.ErrStandardLine):
		return &APIError{Code: "STANDARD_LINE", Message: "cannot delete standard line codes", RecoveryHint: "Hide it with set_line_visibility"}
	case errors.Is(err, note.ErrNoteNotFound):
		return &APIError{Code: "NOTE_NOT_FOUND", Message: "note not found", RecoveryHint: "Call list_notes"}
	case errors.Is(err, setting.ErrSettingNotFound):
		return &APIError{Code: "SETTING_NOT_FOUND", Message: "setting not found", RecoveryHint: "Call list_settings"}
	case errors.Is(err, backup.ErrInvalidDocument), errors.Is(err, backup.ErrUnsupportedFormat):
		return &APIError{Code: "INVALID_DOCUMENT", Message: err.Error()}
	default:
		return nil
	}
}
