package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"marketlens/internal/shape"
	"marketlens/pkg/logging"
)

// UpstreamClient is the interface the invoker needs from the data-provider
// client: one call in, one normalized envelope out.
type UpstreamClient interface {
	Request(ctx context.Context, method, path string, query url.Values, body any) shape.Envelope
}

// Invoker executes catalog tools: validate arguments, call upstream, run
// the optional section pre-step, shape, return. Each invocation is a
// stateless single-shot pipeline; the invoker is safe for concurrent use.
type Invoker struct {
	client UpstreamClient
}

// NewInvoker creates an invoker backed by the given upstream client.
func NewInvoker(client UpstreamClient) *Invoker {
	return &Invoker{client: client}
}

// Invoke runs one tool invocation end to end. Validation failures surface
// as error-flagged TextOutput; everything that reached the upstream comes
// back as a ShapedOutput, including upstream failures (which the shaper
// passes through as error envelopes). The error return is reserved for
// invoker misuse such as an unregistered tool definition.
func (inv *Invoker) Invoke(ctx context.Context, def ToolDef, args map[string]any) (Output, error) {
	requestID := uuid.NewString()
	logging.Debug("Invoker", "[%s] tool=%s", requestID, def.Name)

	path := def.Path
	if def.RequiresTicker {
		ticker, ok := args["ticker"].(string)
		if !ok || strings.TrimSpace(ticker) == "" {
			return TextOutput{
				Text:    fmt.Sprintf("ticker is required for %s", def.Name),
				IsError: true,
			}, nil
		}
		path = strings.ReplaceAll(path, "{ticker}", url.PathEscape(strings.ToUpper(strings.TrimSpace(ticker))))
	}

	env := inv.client.Request(ctx, def.Method, path, filterQuery(args), nil)
	if env.IsError() {
		logging.Warn("Invoker", "[%s] upstream error status=%d: %s", requestID, env.Status, env.Err)
	}

	if def.HasSections && !env.IsError() {
		env.Data = shape.SelectSections(env.Data, sectionArgs(args))
	}

	opts := shape.ParseOptions(args, def.Defaults)
	result := shape.Apply(env, opts)

	return ShapedOutput{Result: result}, nil
}

// filterQuery collects the tool-specific filter arguments, forwarding them
// verbatim as query parameters. Shaping options and the ticker (which is
// part of the path) are excluded.
func filterQuery(args map[string]any) url.Values {
	query := url.Values{}
	for key, value := range args {
		if key == "ticker" || shape.OptionKeys[key] {
			continue
		}
		query.Set(key, queryString(value))
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

func queryString(v any) string {
	switch vv := v.(type) {
	case string:
		return vv
	case bool:
		if vv {
			return "true"
		}
		return "false"
	case json.Number:
		return vv.String()
	case float64:
		// MCP arguments arrive as float64; render integers without the
		// trailing ".0" so upstream numeric filters parse cleanly.
		if vv == float64(int64(vv)) {
			return fmt.Sprintf("%d", int64(vv))
		}
		return fmt.Sprintf("%v", vv)
	default:
		return fmt.Sprintf("%v", vv)
	}
}

func sectionArgs(args map[string]any) []string {
	raw, ok := args["sections"]
	if !ok {
		return nil
	}
	switch vv := raw.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		// Accept a comma-separated string as a convenience.
		parts := strings.Split(vv, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}
