package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, yaml string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)
}

func TestNew(t *testing.T) {
	writeTestConfig(t, `
env:
  env: test
  serviceName: linkuupapp
  log:
    pretty: true
    level: debug
api:
  baseUrl: http://127.0.0.1:8089
  timeout: 30s
  token: yaml-token
media:
  allowedDir: /tmp/media
stub:
  port: 8089
  secretKey: test-secret
  ownerEmail: owner@example.com
  ownerPassword: secret
  plan: basic
`)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.True(t, cfg.Env.Log.Pretty)
	assert.Equal(t, "http://127.0.0.1:8089", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/media", cfg.Media.AllowedDir)
	require.NotNil(t, cfg.Stub)
	assert.Equal(t, 8089, cfg.Stub.Port)
	assert.Equal(t, "basic", cfg.Stub.Plan)
}

func TestNew_DefaultTimeout(t *testing.T) {
	writeTestConfig(t, `
api:
  baseUrl: http://127.0.0.1:8089
`)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
}

func TestNew_EnvOverride(t *testing.T) {
	writeTestConfig(t, `
api:
  baseUrl: http://127.0.0.1:8089
  token: yaml-token
`)
	t.Setenv("API_TOKEN", "env-token")
	t.Setenv("API_BASEURL", "http://127.0.0.1:9090")

	cfg, err := New()
	require.NoError(t, err)

	// ENV segments are aligned with the camelCase keys of the YAML tree.
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, "http://127.0.0.1:9090", cfg.API.BaseURL)
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}
