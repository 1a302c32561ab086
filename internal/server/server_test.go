package server

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketlens/internal/catalog"
	"marketlens/internal/config"
	"marketlens/internal/shape"
)

type stubUpstream struct{}

func (stubUpstream) Request(ctx context.Context, method, path string, query url.Values, body any) shape.Envelope {
	return shape.Envelope{Data: []any{}, Status: 200}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	registry, err := catalog.NewRegistry()
	require.NoError(t, err)
	invoker := catalog.NewInvoker(stubUpstream{})
	cfg := config.ServerConfig{
		Host:      "localhost",
		Port:      8421,
		Transport: config.MCPTransportStreamableHTTP,
	}
	return New(cfg, registry, invoker)
}

func TestNewRegistersWithoutError(t *testing.T) {
	s := newTestServer(t)
	require.NotNil(t, s.server)
}

func TestEndpoint(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, "http://localhost:8421/mcp", s.Endpoint())

	registry, err := catalog.NewRegistry()
	require.NoError(t, err)
	stdio := New(config.ServerConfig{Transport: config.MCPTransportStdio}, registry, catalog.NewInvoker(stubUpstream{}))
	assert.Equal(t, "stdio", stdio.Endpoint())
}

func TestStopBeforeStart(t *testing.T) {
	s := newTestServer(t)
	err := s.Stop(context.Background())
	assert.Error(t, err)
}

func TestToolInputSchema(t *testing.T) {
	def := catalog.ToolDef{
		Name:           "get_congress_trading",
		RequiresTicker: true,
		Args: []catalog.ArgDef{
			{Name: "date_from", Type: "string", Description: "Earliest date"},
		},
	}

	schema := toolInputSchema(def)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"ticker"}, schema.Required)

	// ticker, date_from, plus the six shared shaping options.
	assert.Len(t, schema.Properties, 2+len(catalog.CommonArgs()))
	for _, name := range []string{"ticker", "date_from", "mode", "format", "fields", "page", "page_size", "limit"} {
		assert.Contains(t, schema.Properties, name, "missing property %s", name)
	}

	fields, ok := schema.Properties["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "array", fields["type"])
	assert.Equal(t, map[string]interface{}{"type": "string"}, fields["items"])
}

func TestToolInputSchemaSections(t *testing.T) {
	def := catalog.ToolDef{Name: "get_ticker_snapshot", RequiresTicker: true, HasSections: true}
	schema := toolInputSchema(def)
	assert.Contains(t, schema.Properties, "sections")

	noTicker := toolInputSchema(catalog.ToolDef{Name: "get_recent_lobbying"})
	assert.NotContains(t, noTicker.Properties, "ticker")
	assert.Empty(t, noTicker.Required)
}

func TestToToolResultShaped(t *testing.T) {
	out := catalog.ShapedOutput{Result: shape.Result{Data: "No data available"}}
	result, err := toToolResult(out)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	assert.False(t, result.IsError)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	assert.Equal(t, "No data available", decoded["data"])
}

func TestToToolResultText(t *testing.T) {
	result, err := toToolResult(catalog.TextOutput{Text: "Error: ticker is required", IsError: true})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	assert.Equal(t, "Error: ticker is required", text.Text)
}

func TestToolHandlerInvokesUpstream(t *testing.T) {
	s := newTestServer(t)
	registry, err := catalog.NewRegistry()
	require.NoError(t, err)
	def, err := registry.LookupTool("get_congress_trading")
	require.NoError(t, err)

	handler := s.toolHandler(def)

	request := mcp.CallToolRequest{}
	request.Params.Name = def.Name
	request.Params.Arguments = map[string]any{"ticker": "AAPL"}

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	// Missing ticker surfaces as an error result, not a transport error.
	request.Params.Arguments = map[string]any{}
	result, err = handler(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
