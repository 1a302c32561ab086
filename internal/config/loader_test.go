package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, MCPTransportStdio, cfg.Server.Transport)
	assert.Equal(t, DefaultBaseURL, cfg.Upstream.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Upstream.Timeout.Std())
	assert.Empty(t, cfg.Upstream.APIKey)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  host: 0.0.0.0
  port: 9000
  transport: streamable-http
upstream:
  baseUrl: https://example.test
  apiKey: file-key
  timeout: 10s
logLevel: debug
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, MCPTransportStreamableHTTP, cfg.Server.Transport)
	assert.Equal(t, "https://example.test", cfg.Upstream.BaseURL)
	assert.Equal(t, "file-key", cfg.Upstream.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout.Std())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
upstream:
  apiKey: file-key
`)
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvPort, "7777")
	t.Setenv(EnvTransport, "streamable-http")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Upstream.APIKey)
	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, MCPTransportStreamableHTTP, cfg.Server.Transport)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server: [not a mapping")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad transport",
			mutate:  func(c *Config) { c.Server.Transport = "sse" },
			wantErr: "unsupported transport",
		},
		{
			name: "bad port only matters for http transport",
			mutate: func(c *Config) {
				c.Server.Transport = MCPTransportStreamableHTTP
				c.Server.Port = -1
			},
			wantErr: "invalid port",
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.Upstream.BaseURL = "" },
			wantErr: "baseUrl",
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.Upstream.Timeout = 0 },
			wantErr: "timeout",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: "log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
