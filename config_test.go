package main

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

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
httpPort: ":8080"
ratesURL: http://localhost:9999/v2/rates/
ratesTimeout: 3s
sessionTTL: 5m
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, "http://localhost:9999/v2/rates/", cfg.RatesURL)
	assert.Equal(t, 3*time.Second, cfg.RatesTimeout)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	// defaults fill what the file leaves out
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(10), cfg.RatesMaxInFlight)
	assert.Empty(t, cfg.DSN())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `httpPort: ":8080"`)
	t.Setenv("BUYSELL_HTTP_PORT", ":9090")
	t.Setenv("BUYSELL_DB_HOST", "db")
	t.Setenv("BUYSELL_DB_USERNAME", "user")
	t.Setenv("BUYSELL_DB_PASSWORD", "secret")
	t.Setenv("BUYSELL_DB_NAME", "exchange")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPPort)
	assert.Equal(t, "postgresql://user:secret@db:5432/exchange?sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "httpPort: [1, 2"))
	assert.Error(t, err)
}
