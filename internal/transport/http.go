package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/rpggio/timewizard/internal/domain/summary"
)

// EntryService defines entry operations needed by the API.
type EntryService interface {
	Upsert(ctx context.Context, req entry.UpsertRequest) (*entry.Entry, error)
	List(ctx context.Context, opts entry.ListOptions) ([]entry.Entry, error)
}

// LineService defines line registry operations needed by the API.
type LineService interface {
	List(ctx context.Context) ([]line.Line, error)
	Create(ctx context.Context, req line.CreateRequest) (*line.Line, error)
	SetVisibility(ctx context.Context, code string, visible bool) (*line.Line, error)
	Delete(ctx context.Context, code string) error
}

// NoteService defines work note operations needed by the API.
type NoteService interface {
	Save(ctx context.Context, req note.SaveRequest) (*note.Note, error)
	Delete(ctx context.Context, workDate, lineCode string) error
	List(ctx context.Context, opts note.ListOptions) ([]note.Note, error)
}

// SettingService defines settings operations needed by the API.
type SettingService interface {
	List(ctx context.Context) ([]setting.Setting, error)
	Get(ctx context.Context, key string) (*setting.Setting, error)
	Set(ctx context.Context, key, value string) (*setting.Setting, error)
	Anchor(ctx context.Context) (time.Time, error)
}

// SummaryService defines aggregation operations needed by the API.
type SummaryService interface {
	Weekly(ctx context.Context, weekEnding string) (*summary.Weekly, error)
	Range(ctx context.Context, startDate, endDate string) (*summary.Report, error)
}

// BackupService defines export and import operations needed by the API.
type BackupService interface {
	Export(ctx context.Context, startDate, endDate string) (*backup.Document, error)
	Import(ctx context.Context, doc *backup.Document) (*backup.ImportResult, error)
}

// Services contains all domain services needed by the API.
type Services struct {
	Entries   EntryService
	Lines     LineService
	Notes     NoteService
	Settings  SettingService
	Summaries SummaryService
	Backups   BackupService
}

// Options configures the router.
type Options struct {
	// MCP, when set, is mounted at /mcp.
	MCP    http.Handler
	Logger *slog.Logger
	// MaxImportBytes caps POST /api/import bodies. Zero means DefaultMaxImportBytes.
	MaxImportBytes int64
}

// Server wires HTTP handlers.
type Server struct {
	svc            Services
	logger         *slog.Logger
	maxImportBytes int64
}

// NewServer creates the HTTP router with middleware.
func NewServer(svc Services, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	maxImport := opts.MaxImportBytes
	if maxImport <= 0 {
		maxImport = DefaultMaxImportBytes
	}

	srv := &Server{svc: svc, logger: logger, maxImportBytes: maxImport}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", srv.handleRoot)
		r.Get("/week-info", srv.handleWeekInfo)

		r.Get("/entries", srv.handleListEntries)
		r.Post("/entries", srv.handleUpsertEntry)

		r.Get("/weekly-summary", srv.handleWeeklySummary)
		r.Get("/reports", srv.handleReport)

		r.Get("/lines", srv.handleListLines)
		r.Post("/lines", srv.handleCreateLine)
		r.Put("/lines/{lineCode}", srv.handleUpdateLine)
		r.Delete("/lines/{lineCode}", srv.handleDeleteLine)

		r.Get("/notes", srv.handleListNotes)
		r.Post("/notes", srv.handleSaveNote)
		r.Delete("/notes/{workDate}/{lineCode}", srv.handleDeleteNote)

		r.Get("/settings", srv.handleListSettings)
		r.Get("/settings/{key}", srv.handleGetSetting)
		r.Put("/settings/{key}", srv.handleUpdateSetting)

		r.Get("/export", srv.handleExport)
		r.Post("/import", srv.handleImport)
	})

	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "timewizard API"})
}
