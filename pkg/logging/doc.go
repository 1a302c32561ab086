// Package logging provides structured logging for marketlens built on
// log/slog. All output goes to the writer chosen at Init time (stderr for
// the stdio transport, where stdout is reserved for protocol frames), with
// a subsystem attribute identifying the component that emitted the entry.
package logging
