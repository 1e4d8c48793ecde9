package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nosvault/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 3118, cfg.Server.Port)
	assert.Equal(t, int64(0), cfg.Server.MaxUploadSize)
	assert.Equal(t, "./data", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "PUT", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, []string{"Content-Type", "Authorization"}, cfg.CORS.AllowedHeaders)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9999
  max_upload_size: 1048576
storage:
  path: /var/lib/nosvault
log:
  level: warn
`)

	cfg, err := config.Load([]string{path}, nil)

	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Server.MaxUploadSize)
	assert.Equal(t, "/var/lib/nosvault", cfg.Storage.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9999
`)
	t.Setenv("NOSVAULT_SERVER_PORT", "7777")

	cfg, err := config.Load([]string{path}, nil)

	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("NOSVAULT_SERVER_PORT", "7777")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	require.NoError(t, flags.Parse([]string{"--port", "8888"}))

	path := writeConfigFile(t, "")
	cfg, err := config.Load([]string{path}, flags)

	require.NoError(t, err)
	assert.Equal(t, 8888, cfg.Server.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 99999
`)

	_, err := config.Load([]string{path}, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: loud
`)

	_, err := config.Load([]string{path}, nil)

	assert.Error(t, err)
}
