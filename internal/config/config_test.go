package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "uniconnect.json", cfg.Storage.Path)
	assert.Equal(t, []string{".edu", ".edu.in", ".ac.in"}, cfg.Auth.AllowedDomains)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniconnect.yaml")
	contents := `
storage:
  backend: sqlite
  path: /tmp/uniconnect.db
auth:
  allowed_domains: [".ac.uk"]
  min_password_length: 10
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/uniconnect.db", cfg.Storage.Path)
	assert.Equal(t, []string{".ac.uk"}, cfg.Auth.AllowedDomains)
	assert.Equal(t, 10, cfg.Auth.MinPasswordLength)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniconnect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: file\n"), 0o600))

	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("AUTH_ALLOWED_DOMAINS", ".edu, .ac.jp")
	t.Setenv("AUTH_MIN_PASSWORD_LENGTH", "8")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, []string{".edu", ".ac.jp"}, cfg.Auth.AllowedDomains)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsEmptyPathForFileBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("STORAGE_PATH", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
