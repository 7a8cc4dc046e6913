package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 16, cfg.Generator.DefaultLength)
	assert.Equal(t, 50, cfg.Generator.MaxLength)
	assert.Equal(t, 3, cfg.Generator.MinZxcvbnScore)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(20), cfg.RateLimit.RPS)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Monitoring.Enabled)
	assert.Equal(t, "/metrics", cfg.Monitoring.Path)
	assert.Empty(t, cfg.Strength.CorpusFile)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9090
  shutdown_timeout: 15s
generator:
  default_length: 24
rate_limit:
  enabled: false
logging:
  level: debug
  pretty: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), yaml, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 24, cfg.Generator.DefaultLength)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)

	// Untouched keys keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 50, cfg.Generator.MaxLength)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PASSCHECK_SERVER_PORT", "7070")
	t.Setenv("PASSCHECK_GENERATOR_DEFAULT_LENGTH", "20")
	t.Setenv("PASSCHECK_LOGGING_LEVEL", "warn")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Generator.DefaultLength)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("server: [not a map"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}
