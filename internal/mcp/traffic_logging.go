package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxLoggedPayload bounds the bytes of params or result written per log line.
const maxLoggedPayload = 2048

// trafficLogger writes a request line and a response line at debug level for
// every MCP method passing through one direction of a session.
type trafficLogger struct {
	logger    *slog.Logger
	direction string
	limit     int
}

func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	tl := &trafficLogger{logger: logger, direction: direction, limit: maxLoggedPayload}
	return tl.wrap
}

func (tl *trafficLogger) wrap(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
	return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		if tl.logger == nil || !tl.logger.Enabled(ctx, slog.LevelDebug) {
			return next(ctx, method, req)
		}

		sessionID, params := inspectRequest(req)
		attrs := []any{"direction", tl.direction, "method", method, "session_id", sessionID}
		if tool := toolName(params); tool != "" {
			attrs = append(attrs, "tool", tool)
		}
		log := tl.logger.With(attrs...)
		log.DebugContext(ctx, "mcp traffic", "stage", "request", "params", tl.payload(params))

		start := time.Now()
		result, err := next(ctx, method, req)

		// notifications have no reply
		if strings.HasPrefix(method, "notifications/") {
			return result, err
		}

		out := []any{"stage", "response", "duration", time.Since(start), "result", tl.payload(result)}
		if res, ok := result.(*sdkmcp.CallToolResult); ok && res != nil && res.IsError {
			out = append(out, "tool_error", true)
		}
		if err != nil {
			out = append(out, "error", err)
		}
		log.DebugContext(ctx, "mcp traffic", out...)
		return result, err
	}
}

// payload renders v as JSON cut to the logger's limit.
func (tl *trafficLogger) payload(v any) string {
	if v == nil {
		return "<nil>"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%T>", v)
	}
	if tl.limit > 0 && len(data) > tl.limit {
		return fmt.Sprintf("%s...(%d bytes)", data[:tl.limit], len(data))
	}
	return string(data)
}

// inspectRequest reads the session id and params of req. Requests built
// around a nil session panic on access, so both reads are guarded.
func inspectRequest(req sdkmcp.Request) (sessionID string, params sdkmcp.Params) {
	if req == nil {
		return "", nil
	}
	defer func() {
		if recover() != nil {
			sessionID = ""
		}
	}()
	params = req.GetParams()
	if session := req.GetSession(); session != nil {
		sessionID = session.ID()
	}
	return sessionID, params
}

func toolName(params sdkmcp.Params) string {
	switch p := params.(type) {
	case *sdkmcp.CallToolParamsRaw:
		if p != nil {
			return p.Name
		}
	case *sdkmcp.CallToolParams:
		if p != nil {
			return p.Name
		}
	}
	return ""
}
