package transport

import (
	"net/http"

	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/payweek"
)

// UpsertEntryRequest is the body of POST /api/entries.
type UpsertEntryRequest struct {
	WorkDate string `json:"work_date"`
	LineCode string `json:"line_code"`
	STHours  int    `json:"st_hours"`
	OTHours  int    `json:"ot_hours"`
}

func (s *Server) handleWeekInfo(w http.ResponseWriter, r *http.Request) {
	workDate, err := payweek.ParseDate(r.URL.Query().Get("work_date"))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	anchor, err := s.svc.Settings.Anchor(r.Context())
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payweek.Info(workDate, anchor))
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries, err := s.svc.Entries.List(r.Context(), entry.ListOptions{
		WeekEnding: q.Get("week_ending"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	})
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleUpsertEntry(w http.ResponseWriter, r *http.Request) {
	var req UpsertEntryRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.WriteError(w, r, err)
		return
	}

	e, err := s.svc.Entries.Upsert(r.Context(), entry.UpsertRequest{
		WorkDate: req.WorkDate,
		LineCode: req.LineCode,
		STHours:  req.STHours,
		OTHours:  req.OTHours,
	})
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
