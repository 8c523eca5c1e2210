package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/rpggio/timewizard/internal/domain/summary"
	"github.com/rpggio/timewizard/internal/mcp"
	"github.com/rpggio/timewizard/internal/sqlite"
	"github.com/rpggio/timewizard/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// Services holds the concrete domain services of a test stack.
type Services struct {
	Settings  *setting.Service
	Lines     *line.Service
	Entries   *entry.Service
	Notes     *note.Service
	Summaries *summary.Service
	Backups   *backup.Service
}

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Services Services
	MCP      *sdkmcp.Server
}

// New starts a seeded in-memory stack behind an httptest server.
func New(t *testing.T) *TestServer {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))

	settingSvc := setting.NewService(sqlite.NewSettingRepository(db), nil)
	lineSvc := line.NewService(sqlite.NewLineRepository(db), nil)
	entrySvc := entry.NewService(sqlite.NewEntryRepository(db), settingSvc, nil)
	noteSvc := note.NewService(sqlite.NewNoteRepository(db), nil)
	summarySvc := summary.NewService(entrySvc, noteSvc, settingSvc, nil)
	backupSvc := backup.NewService(sqlite.NewBackupRepository(db), nil)

	require.NoError(t, lineSvc.SeedStandard(ctx))
	require.NoError(t, settingSvc.SeedDefaults(ctx))

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Entries:   entrySvc,
			Lines:     lineSvc,
			Notes:     noteSvc,
			Settings:  settingSvc,
			Summaries: summarySvc,
		},
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: time.Minute},
	)

	router := transport.NewServer(transport.Services{
		Entries:   entrySvc,
		Lines:     lineSvc,
		Notes:     noteSvc,
		Settings:  settingSvc,
		Summaries: summarySvc,
		Backups:   backupSvc,
	}, transport.Options{MCP: mcpHandler})
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server: server,
		DB:     db,
		Services: Services{
			Settings:  settingSvc,
			Lines:     lineSvc,
			Entries:   entrySvc,
			Notes:     noteSvc,
			Summaries: summarySvc,
			Backups:   backupSvc,
		},
		MCP: mcpServer,
	}
}

// URL returns the absolute URL of an API path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
