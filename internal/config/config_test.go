package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minecloud.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SESSION_SECRET", "LOG_LEVEL", "PORT"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "minecloud-ai", cfg.Server.Name)
	assert.Equal(t, "MineCloud AI", cfg.Server.Title)
	assert.Equal(t, "dev-secret-key", cfg.Session.Secret)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.Chat.ResponseDelay)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  port: 8081
  name: test-bot
chat:
  responseDelay: 500ms
  websocket: true
redis:
  enabled: true
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "test-bot", cfg.Server.Name)
	assert.Equal(t, 500*time.Millisecond, cfg.Chat.ResponseDelay)
	assert.True(t, cfg.Chat.WebSocket)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")

	path := writeConfig(t, "server:\n  port: 8081\nsession:\n  secret: from-file\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		port    string
	}{
		{name: "malformed yaml", content: "server: [unclosed"},
		{name: "bad port env", content: "", port: "eighty"},
		{name: "port out of range", content: "server:\n  port: 70000\n"},
		{name: "negative delay", content: "chat:\n  responseDelay: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.port != "" {
				t.Setenv("PORT", tt.port)
			}

			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
