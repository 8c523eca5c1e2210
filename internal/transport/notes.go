package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/timewizard/internal/domain/note"
)

// SaveNoteRequest is the body of POST /api/notes.
type SaveNoteRequest struct {
	WorkDate string `json:"work_date"`
	LineCode string `json:"line_code"`
	NoteText string `json:"note_text"`
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	notes, err := s.svc.Notes.List(r.Context(), note.ListOptions{
		WorkDate:   q.Get("work_date"),
		WeekEnding: q.Get("week_ending"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	})
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleSaveNote(w http.ResponseWriter, r *http.Request) {
	var req SaveNoteRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.WriteError(w, r, err)
		return
	}

	n, err := s.svc.Notes.Save(r.Context(), note.SaveRequest{
		WorkDate: req.WorkDate,
		LineCode: req.LineCode,
		Text:     req.NoteText,
	})
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	code, err := pathParam(r, "lineCode")
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	if err := s.svc.Notes.Delete(r.Context(), chi.URLParam(r, "workDate"), code); err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Note deleted"})
}
