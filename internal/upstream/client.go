package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"marketlens/internal/shape"
	"marketlens/pkg/logging"
)

// Client issues requests against the alternative-data provider API. It
// performs no retries and no caching; each tool invocation maps to exactly
// one HTTP request with a fixed per-request timeout.
//
// The API key may be swapped at runtime (the config watcher does this when
// the config file changes); all other fields are immutable after New.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	apiKey string
}

// New creates an upstream client. timeout bounds each individual request;
// on expiry the call resolves to an error envelope rather than an error
// return.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetAPIKey replaces the bearer token used for subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	c.apiKey = key
	c.mu.Unlock()
}

// Request performs a single upstream call and normalizes the outcome into
// an envelope. It never returns an error: transport failures, non-2xx
// statuses and undecodable bodies all surface as {Err, Status}.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body any) shape.Envelope {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return shape.Envelope{Err: fmt.Sprintf("failed to encode request body: %v", err), Status: http.StatusInternalServerError}
		}
		reqBody = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return shape.Envelope{Err: fmt.Sprintf("failed to build request: %v", err), Status: http.StatusInternalServerError}
	}

	c.mu.RLock()
	apiKey := c.apiKey
	c.mu.RUnlock()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debug("Upstream", "%s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Error("Upstream", err, "Request failed: %s %s", method, path)
		return shape.Envelope{Err: fmt.Sprintf("upstream request failed: %v", err), Status: http.StatusInternalServerError}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return shape.Envelope{Err: fmt.Sprintf("failed to read response body: %v", err), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		logging.Warn("Upstream", "Non-2xx response %d for %s %s", resp.StatusCode, method, path)
		return shape.Envelope{Err: msg, Status: resp.StatusCode}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return shape.Envelope{Data: nil, Status: resp.StatusCode}
	}

	data, err := shape.DecodeJSON(raw)
	if err != nil {
		return shape.Envelope{Err: fmt.Sprintf("failed to decode response: %v", err), Status: resp.StatusCode}
	}

	return shape.Envelope{Data: data, Status: resp.StatusCode}
}
