// Package cli carries the shared plumbing behind the marketlens commands:
// an MCP client for talking to a running server over streamable HTTP,
// key=value argument parsing for one-shot tool calls, and plain
// kubectl-style table output that pipes cleanly into grep and awk.
package cli
