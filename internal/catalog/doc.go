// Package catalog defines the static tool, prompt and resource catalog and
// the invoker that executes tools against the upstream client.
//
// The catalog is configuration data: each tool entry pairs a parameter
// schema with an upstream call recipe and a default shaping fragment. The
// registry built from it is immutable after startup. Invocation is a
// stateless single-shot pipeline: validate, call upstream, optionally
// section-select, shape, return.
package catalog
