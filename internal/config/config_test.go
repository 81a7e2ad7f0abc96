package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "cosplanner.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COSPLANNER_SERVER_HOST", "127.0.0.1")
	t.Setenv("COSPLANNER_SERVER_PORT", "9090")
	t.Setenv("COSPLANNER_DB_PATH", "/tmp/planner.db")
	t.Setenv("COSPLANNER_LOG_LEVEL", "debug")
	t.Setenv("COSPLANNER_TRANSPORT", "http")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/planner.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 7070\ndb:\n  path: file.db\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("COSPLANNER_CONFIG_PATH", path)
	t.Setenv("COSPLANNER_DB_PATH", "env.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	// Environment wins over the file.
	require.Equal(t, "env.db", cfg.DB.Path)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("COSPLANNER_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.ErrorContains(t, err, "COSPLANNER_SERVER_PORT")
}

func TestLoad_InvalidTransport(t *testing.T) {
	t.Setenv("COSPLANNER_TRANSPORT", "pigeon")
	_, err := Load()
	require.ErrorContains(t, err, "invalid transport mode")
}
