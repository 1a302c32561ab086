package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketlens/internal/config"
)

func testConfig() *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.Upstream.APIKey = "test-key"
	return &cfg
}

func TestNewApplication(t *testing.T) {
	app, err := NewApplication(&Config{Silent: true, Loaded: testConfig()})
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "stdio", app.Endpoint())
}

func TestNewApplicationOverrides(t *testing.T) {
	app, err := NewApplication(&Config{
		Silent:    true,
		Loaded:    testConfig(),
		Transport: "streamable-http",
		Host:      "0.0.0.0",
		Port:      9000,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://0.0.0.0:9000/mcp", app.Endpoint())
	assert.Equal(t, config.MCPTransportStreamableHTTP, app.cfg.Server.Transport)
}

func TestApplyOverridesDebugLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	appCfg := &Config{Debug: true}
	appCfg.applyOverrides(&cfg)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestReloadConfigUpdatesAPIKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig := func(key string) {
		content := "server:\n  host: localhost\n  port: 8421\n  transport: stdio\nupstream:\n  apiKey: " + key + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	}
	writeConfig("first-key")

	app, err := NewApplication(&Config{Silent: true, ConfigPath: dir})
	require.NoError(t, err)
	assert.Equal(t, "first-key", app.cfg.Upstream.APIKey)

	writeConfig("second-key")
	app.reloadConfig()
	assert.Equal(t, "second-key", app.cfg.Upstream.APIKey)
}

func TestReloadConfigIgnoresBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upstream:\n  apiKey: good-key\n"), 0o644))

	app, err := NewApplication(&Config{Silent: true, ConfigPath: dir})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{{not yaml"), 0o644))
	app.reloadConfig()
	assert.Equal(t, "good-key", app.cfg.Upstream.APIKey)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Transport = config.MCPTransportStreamableHTTP
	cfg.Server.Port = 18421

	app, err := NewApplication(&Config{Silent: true, Loaded: cfg})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
