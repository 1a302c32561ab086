// Package app bootstraps and runs the marketlens server.
//
// It follows a two-phase pattern: NewApplication loads configuration,
// initializes logging and wires the upstream client, catalog and MCP
// server together; Run starts the transport and blocks until the context
// is cancelled, keeping a config watcher alive so API-key rotations take
// effect without a restart.
package app
