package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// UpdateSettingRequest is the body of PUT /api/settings/{key}. A key in the body
// is accepted and ignored; the path wins.
type UpdateSettingRequest struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

func (s *Server) handleListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.svc.Settings.List(r.Context())
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Settings.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleUpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.WriteError(w, r, err)
		return
	}

	st, err := s.svc.Settings.Set(r.Context(), chi.URLParam(r, "key"), req.Value)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
