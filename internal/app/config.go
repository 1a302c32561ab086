package app

import "marketlens/internal/config"

// Config carries the command-line level settings that shape a run. Zero
// values mean "use the loaded configuration".
type Config struct {
	// Debug lowers the log level to debug.
	Debug bool
	// Silent suppresses all log output. Useful for stdio servers embedded
	// in hosts that treat stderr noise as failure.
	Silent bool
	// ConfigPath points at an alternative configuration directory.
	ConfigPath string
	// Transport overrides the configured transport when non-empty.
	Transport string
	// Host overrides the configured listen host when non-empty.
	Host string
	// Port overrides the configured listen port when non-zero.
	Port int

	// Loaded is the resolved configuration. Populated by NewApplication;
	// pre-populating it skips config loading, which tests use.
	Loaded *config.Config
}

// applyOverrides folds the command-line overrides into the loaded config.
func (c *Config) applyOverrides(cfg *config.Config) {
	if c.Transport != "" {
		cfg.Server.Transport = config.MCPTransport(c.Transport)
	}
	if c.Host != "" {
		cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.Debug {
		cfg.LogLevel = "debug"
	}
}
