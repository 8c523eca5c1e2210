package functional_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// stdioSession drives a built server binary over its stdio transport.
type stdioSession struct {
	session *sdkmcp.ClientSession
	cancel  context.CancelFunc
}

func newStdioSession(t *testing.T) *stdioSession {
	t.Helper()
	return newStdioSessionWithEnv(t, nil)
}

func newStdioSessionWithEnv(t *testing.T, extraEnv []string) *stdioSession {
	t.Helper()

	binaryPath := "./bin/timewizard"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/timewizard"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'go build -o bin/timewizard ./cmd/server' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	cmd := exec.CommandContext(ctx, binaryPath, "serve")
	cmd.Env = append(os.Environ(),
		"TIMEWIZARD_CONFIG_PATH=",
		"TIMEWIZARD_TRANSPORT_MODE=stdio",
		"TIMEWIZARD_DB_PATH=:memory:",
	)
	cmd.Env = append(cmd.Env, extraEnv...)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		t.Fatalf("Failed to connect: %v", err)
	}

	t.Cleanup(func() {
		session.Close()
		cancel()
	})

	return &stdioSession{session: session, cancel: cancel}
}

func (s *stdioSession) callTool(t *testing.T, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := s.session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error", name)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			return json.RawMessage(textContent.Text)
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil
}

func TestStdioFunctional_TimesheetWeek(t *testing.T) {
	s := newStdioSession(t)

	infoResp := s.callTool(t, "week_info", map[string]any{"work_date": "2025-11-16"})
	var info struct {
		WeekEndingDate string `json:"week_ending_date"`
		IsPayWeek      bool   `json:"is_pay_week"`
	}
	require.NoError(t, json.Unmarshal(infoResp, &info))
	require.Equal(t, "2025-11-22", info.WeekEndingDate)
	require.True(t, info.IsPayWeek)

	_ = s.callTool(t, "upsert_entry", map[string]any{
		"work_date": "2025-11-17", "line_code": "VTR", "st_hours": 8, "ot_hours": 2,
	})
	_ = s.callTool(t, "upsert_entry", map[string]any{
		"work_date": "2025-11-17", "line_code": "VTR", "st_hours": 7, "ot_hours": 3,
	})

	listResp := s.callTool(t, "list_entries", map[string]any{"week_ending": "2025-11-22"})
	var entries []struct {
		LineCode string `json:"line_code"`
		STHours  int    `json:"st_hours"`
		OTHours  int    `json:"ot_hours"`
	}
	require.NoError(t, json.Unmarshal(listResp, &entries))
	require.Len(t, entries, 1)
	require.Equal(t, 7, entries[0].STHours)
	require.Equal(t, 3, entries[0].OTHours)

	summaryResp := s.callTool(t, "weekly_summary", map[string]any{"week_ending": "2025-11-22"})
	var summary struct {
		TotalHours int      `json:"total_hours"`
		LinesUsed  []string `json:"lines_used"`
	}
	require.NoError(t, json.Unmarshal(summaryResp, &summary))
	require.Equal(t, 10, summary.TotalHours)
	require.Equal(t, []string{"VTR"}, summary.LinesUsed)
}

func TestStdioFunctional_MCPProtocolCompliance(t *testing.T) {
	s := newStdioSession(t)

	initResult := s.session.InitializeResult()
	require.NotNil(t, initResult)
	require.NotNil(t, initResult.ServerInfo)
	require.Equal(t, "timewizard", initResult.ServerInfo.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := s.session.ListTools(ctx, nil)
	require.NoError(t, err)

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
	}
	for _, name := range []string{"week_info", "upsert_entry", "weekly_summary", "delete_line", "update_setting", "save_note", "list_notes"} {
		require.Contains(t, toolMap, name)
		require.NotEmpty(t, toolMap[name].Description)
	}
}

func TestStdioFunctional_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timewizard.log")
	s := newStdioSessionWithEnv(t, []string{
		"TIMEWIZARD_LOG_PATH=" + logPath,
		"TIMEWIZARD_LOG_LEVEL=debug",
	})

	_ = s.callTool(t, "list_lines", nil)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(logPath)
		if err != nil {
			return false
		}
		text := string(data)
		return strings.Contains(text, `msg="mcp traffic"`) &&
			strings.Contains(text, "stage=request") &&
			strings.Contains(text, "stage=response")
	}, 5*time.Second, 100*time.Millisecond)
}

func TestStdioFunctional_DocumentationResources(t *testing.T) {
	s := newStdioSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	read, err := s.session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "timewizard://docs/pay-weeks"})
	require.NoError(t, err)
	require.NotEmpty(t, read.Contents)
	require.Equal(t, "text/markdown", read.Contents[0].MIMEType)
	require.NotEmpty(t, read.Contents[0].Text)
}
