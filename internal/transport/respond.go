package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/payweek"
	"github.com/rpggio/timewizard/internal/domain/setting"
)

var (
	// ErrBadRequest indicates a request body that cannot be decoded.
	ErrBadRequest = errors.New("malformed request body")
	// ErrPayloadTooLarge indicates a request body over the upload limit.
	ErrPayloadTooLarge = errors.New("request body too large")
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error Error `json:"error"`
}

// Error describes a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse carries a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(body io.Reader, out any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

// pathParam returns the decoded URL parameter. chi matches on the escaped path,
// so a code like "PROJ/7" arrives as "PROJ%2F7".
func pathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: path parameter %s %q", ErrBadRequest, name, raw)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps err to a status code and writes it as an ErrorResponse.
func (s *Server) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		message = "internal error"
	}
	writeJSON(w, status, ErrorResponse{Error: Error{Code: code, Message: message}})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, payweek.ErrInvalidDate):
		return http.StatusBadRequest, "INVALID_DATE"
	case errors.Is(err, entry.ErrInvalidSelector),
		errors.Is(err, note.ErrInvalidSelector):
		return http.StatusBadRequest, "MISSING_SELECTOR"
	case errors.Is(err, entry.ErrInvalidInput),
		errors.Is(err, line.ErrInvalidInput),
		errors.Is(err, setting.ErrInvalidInput),
		errors.Is(err, note.ErrInvalidInput),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"
	case errors.Is(err, backup.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT"
	case errors.Is(err, backup.ErrInvalidDocument):
		return http.StatusBadRequest, "INVALID_DOCUMENT"
	case errors.Is(err, line.ErrLineNotFound):
		return http.StatusNotFound, "LINE_NOT_FOUND"
	case errors.Is(err, note.ErrNoteNotFound):
		return http.StatusNotFound, "NOTE_NOT_FOUND"
	case errors.Is(err, setting.ErrSettingNotFound):
		return http.StatusNotFound, "SETTING_NOT_FOUND"
	case errors.Is(err, line.ErrStandardLine):
		return http.StatusForbidden, "STANDARD_LINE"
	case errors.Is(err, line.ErrLineExists):
		return http.StatusConflict, "LINE_EXISTS"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
