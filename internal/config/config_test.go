package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TIMEWIZARD_CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "timewizard.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.MCP.Enabled)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: 9090
db:
  path: /tmp/hours.db
mcp:
  enabled: false
`), 0o644))

	t.Setenv("TIMEWIZARD_CONFIG_PATH", path)
	t.Setenv("TIMEWIZARD_SERVER_PORT", "9191")
	t.Setenv("TIMEWIZARD_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, "/tmp/hours.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.MCP.Enabled)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TIMEWIZARD_CONFIG_PATH", "")
	t.Setenv("TIMEWIZARD_TRANSPORT_MODE", "carrier-pigeon")

	_, err := Load("")
	require.ErrorContains(t, err, "invalid transport mode")
}
