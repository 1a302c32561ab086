// Package upstream holds the HTTP client for the alternative-data provider
// API. Every tool invocation issues exactly one request through it; there
// are no retries, no caching and no concurrent sub-requests. All outcomes,
// including transport failures and timeouts, are normalized into the
// shaping pipeline's envelope contract instead of error returns.
package upstream
