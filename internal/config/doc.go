// Package config provides configuration management for marketlens.
//
// Configuration is resolved in three layers, later layers winning:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. config.yaml in the configuration directory (default
//     ~/.config/marketlens, overridable with --config-path)
//  3. MARKETLENS_* environment variables
//
// The upstream API key is deliberately not part of the defaults: it must
// be supplied via the config file or MARKETLENS_API_KEY. Timeouts use Go
// duration syntax ("30s", "1m").
package config
