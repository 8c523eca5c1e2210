package transport

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/rpggio/timewizard/internal/domain/summary"
)

func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	weekly, err := s.svc.Summaries.Weekly(r.Context(), r.URL.Query().Get("week_ending"))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, weekly)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := s.svc.Summaries.Range(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	switch q.Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, report)
	case "csv":
		var buf bytes.Buffer
		if err := summary.WriteCSV(&buf, report); err != nil {
			s.WriteError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="timesheet_%s_%s.csv"`, report.StartDate, report.EndDate))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	default:
		s.WriteError(w, r, fmt.Errorf("%w: report format %q", ErrBadRequest, q.Get("format")))
	}
}
