package config

import "time"

const (
	// DefaultBaseURL is the production endpoint of the data provider.
	DefaultBaseURL = "https://api.quiverquant.com"

	// DefaultTimeout bounds every individual upstream request.
	DefaultTimeout = 30 * time.Second
)

// GetDefaultConfig returns the built-in configuration. The API key has no
// default; it must come from the config file or the environment.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:      "localhost",
			Port:      8421,
			Transport: MCPTransportStdio,
		},
		Upstream: UpstreamConfig{
			BaseURL: DefaultBaseURL,
			Timeout: Duration(DefaultTimeout),
		},
		LogLevel: "info",
	}
}
