package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/rpggio/timewizard/internal/domain/summary"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// EntryService defines entry operations needed by MCP.
type EntryService interface {
	Upsert(ctx context.Context, req entry.UpsertRequest) (*entry.Entry, error)
	List(ctx context.Context, opts entry.ListOptions) ([]entry.Entry, error)
}

// LineService defines line registry operations needed by MCP.
type LineService interface {
	List(ctx context.Context) ([]line.Line, error)
	Create(ctx context.Context, req line.CreateRequest) (*line.Line, error)
	SetVisibility(ctx context.Context, code string, visible bool) (*line.Line, error)
	Delete(ctx context.Context, code string) error
}

// NoteService defines work note operations needed by MCP.
type NoteService interface {
	Save(ctx context.Context, req note.SaveRequest) (*note.Note, error)
	Delete(ctx context.Context, workDate, lineCode string) error
	List(ctx context.Context, opts note.ListOptions) ([]note.Note, error)
}

// SettingService defines settings operations needed by MCP.
type SettingService interface {
	List(ctx context.Context) ([]setting.Setting, error)
	Get(ctx context.Context, key string) (*setting.Setting, error)
	Set(ctx context.Context, key, value string) (*setting.Setting, error)
	Anchor(ctx context.Context) (time.Time, error)
}

// SummaryService defines aggregation operations needed by MCP.
type SummaryService interface {
	Weekly(ctx context.Context, weekEnding string) (*summary.Weekly, error)
	Range(ctx context.Context, startDate, endDate string) (*summary.Report, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Entries   EntryService
	Lines     LineService
	Notes     NoteService
	Settings  SettingService
	Summaries SummaryService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "timewizard",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
