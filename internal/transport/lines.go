package transport

import (
	"net/http"

	"github.com/rpggio/timewizard/internal/domain/line"
)

// CreateLineRequest is the body of POST /api/lines.
type CreateLineRequest struct {
	LineCode  string `json:"line_code"`
	Label     string `json:"label"`
	IsProject bool   `json:"is_project"`
}

// UpdateLineRequest is the body of PUT /api/lines/{line_code}.
type UpdateLineRequest struct {
	IsVisible *bool `json:"is_visible"`
}

func (s *Server) handleListLines(w http.ResponseWriter, r *http.Request) {
	lines, err := s.svc.Lines.List(r.Context())
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

func (s *Server) handleCreateLine(w http.ResponseWriter, r *http.Request) {
	var req CreateLineRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.WriteError(w, r, err)
		return
	}

	l, err := s.svc.Lines.Create(r.Context(), line.CreateRequest{
		Code:      req.LineCode,
		Label:     req.Label,
		IsProject: req.IsProject,
	})
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (s *Server) handleUpdateLine(w http.ResponseWriter, r *http.Request) {
	var req UpdateLineRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.WriteError(w, r, err)
		return
	}
	if req.IsVisible == nil {
		s.WriteError(w, r, line.ErrInvalidInput)
		return
	}

	code, err := pathParam(r, "lineCode")
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	l, err := s.svc.Lines.SetVisibility(r.Context(), code, *req.IsVisible)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleDeleteLine(w http.ResponseWriter, r *http.Request) {
	code, err := pathParam(r, "lineCode")
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	if err := s.svc.Lines.Delete(r.Context(), code); err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Line code deleted"})
}
