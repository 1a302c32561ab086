// Package server hosts the MCP dispatch layer.
//
// It registers the catalog's tools, prompts and resources on an MCP server
// and runs it over the configured transport: stdio for subprocess-style
// clients or streamable HTTP for networked ones. The catalog is fixed at
// construction time; the server never mutates it.
//
// Tool handlers delegate to catalog.Invoker and translate its tagged output
// into MCP tool results: shaped envelopes become indented JSON text,
// validation failures become error results.
package server
