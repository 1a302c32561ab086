package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MCPTransport defines how the MCP server is exposed to callers.
type MCPTransport string

const (
	// MCPTransportStdio serves MCP over stdin/stdout for direct AI
	// assistant integration.
	MCPTransportStdio MCPTransport = "stdio"
	// MCPTransportStreamableHTTP serves MCP over a one-shot HTTP binding.
	MCPTransportStreamableHTTP MCPTransport = "streamable-http"
)

// Config is the top-level marketlens configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	LogLevel string         `yaml:"logLevel,omitempty"`
}

// ServerConfig configures the MCP server transport.
type ServerConfig struct {
	Host      string       `yaml:"host"`
	Port      int          `yaml:"port"`
	Transport MCPTransport `yaml:"transport"`
}

// UpstreamConfig configures the data-provider API client.
type UpstreamConfig struct {
	BaseURL string   `yaml:"baseUrl"`
	APIKey  string   `yaml:"apiKey"`
	Timeout Duration `yaml:"timeout"`
}

// Duration wraps time.Duration so YAML values can use Go duration syntax
// ("30s", "1m30s") instead of raw nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}
