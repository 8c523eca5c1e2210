package transport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpggio/timewizard/internal/domain/backup"
)

// DefaultMaxImportBytes caps the size of an uploaded backup document.
const DefaultMaxImportBytes = 32 << 20

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format, err := backup.ParseFormat(q.Get("format"))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	doc, err := s.svc.Backups.Export(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := backup.Encode(&buf, format, doc); err != nil {
		s.WriteError(w, r, err)
		return
	}

	filename := fmt.Sprintf("timewizard_%s.%s", doc.ExportDate.Time().Format(time.DateOnly), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	format := backup.FormatFromContentType(r.Header.Get("Content-Type"))
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := backup.ParseFormat(name)
		if err != nil {
			s.WriteError(w, r, err)
			return
		}
		format = f
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, tooLarge.Limit)
		}
		s.WriteError(w, r, err)
		return
	}

	doc, err := backup.Decode(bytes.NewReader(body), format)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	res, err := s.svc.Backups.Import(r.Context(), doc)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
