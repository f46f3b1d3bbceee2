package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BaseAndEnvFile(t *testing.T) {
	cfg, err := Load(".", "dev")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://localhost:8085/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("STOREFRONT_BACKEND__BASE_URL", "https://api.inmedt.ec/api")
	t.Setenv("STOREFRONT_BACKEND__GOOGLE_CLIENT_ID", "abc.apps.googleusercontent.com")

	cfg, err := Load(".", "missing-env")
	require.NoError(t, err)
	assert.Equal(t, "https://api.inmedt.ec/api", cfg.Backend.BaseURL)
	assert.Equal(t, "abc.apps.googleusercontent.com", cfg.Backend.GoogleClientID)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_RejectsRelativeBackend(t *testing.T) {
	dir := t.TempDir()
	yaml := "app:\n  http_addr: \":9000\"\nbackend:\n  base_url: /api\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(yaml), 0o644))

	_, err := Load(dir, "dev")
	assert.ErrorContains(t, err, "backend.base_url")
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("app:\n  http_addr: \":9000\"\n"), 0o644))

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8085/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
}
