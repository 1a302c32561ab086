package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"marketlens/pkg/logging"
)

// Environment variable overrides. These take precedence over the config
// file so deployments can inject credentials without writing them to disk.
const (
	EnvAPIKey    = "MARKETLENS_API_KEY"
	EnvBaseURL   = "MARKETLENS_BASE_URL"
	EnvTransport = "MARKETLENS_TRANSPORT"
	EnvHost      = "MARKETLENS_HOST"
	EnvPort      = "MARKETLENS_PORT"
	EnvLogLevel  = "MARKETLENS_LOG_LEVEL"
)

// ConfigFileName is the name of the main configuration file inside the
// configuration directory.
const ConfigFileName = "config.yaml"

// DefaultConfigDir returns the default configuration directory,
// ~/.config/marketlens.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "marketlens"), nil
}

// ConfigFilePath resolves the path of the config file for a given
// configuration directory (empty means the default directory).
func ConfigFilePath(configDir string) (string, error) {
	if configDir == "" {
		var err error
		configDir, err = DefaultConfigDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// Load builds the effective configuration: defaults, overlaid by the
// config file (if present), overlaid by environment variables. A missing
// config file is not an error; a malformed one is.
func Load(configDir string) (Config, error) {
	cfg := GetDefaultConfig()

	path, err := ConfigFilePath(configDir)
	if err != nil {
		return cfg, err
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Debug("Config", "No config file at %s, using defaults", path)
	case err != nil:
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		logging.Debug("Config", "Loaded config from %s", path)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Upstream.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := os.Getenv(EnvTransport); v != "" {
		cfg.Server.Transport = MCPTransport(v)
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		} else {
			logging.Warn("Config", "Ignoring invalid %s value %q", EnvPort, v)
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the configuration for consistency, collecting all
// problems into a single error.
func (c Config) Validate() error {
	var problems []string

	switch c.Server.Transport {
	case MCPTransportStdio, MCPTransportStreamableHTTP:
	default:
		problems = append(problems, fmt.Sprintf("unsupported transport %q (valid: stdio, streamable-http)", c.Server.Transport))
	}

	if c.Server.Transport == MCPTransportStreamableHTTP {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, fmt.Sprintf("invalid port %d", c.Server.Port))
		}
	}

	if c.Upstream.BaseURL == "" {
		problems = append(problems, "upstream baseUrl must not be empty")
	}
	if c.Upstream.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("upstream timeout must be positive, got %s", c.Upstream.Timeout))
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
