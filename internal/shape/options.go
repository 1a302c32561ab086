package shape

import (
	"encoding/json"
	"strconv"
)

// Mode controls the information density of a JSON-format response.
type Mode string

const (
	ModeCompact  Mode = "compact"
	ModeSummary  Mode = "summary"
	ModeDetailed Mode = "detailed"
)

// Format controls the serialization syntax of a response, orthogonal to Mode.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

// Options is the value object controlling the shaping pipeline. All fields
// are optional; the zero value shapes nothing beyond attaching the summary
// block.
//
// RequestedFields is nil when the caller did not pass a field list at all.
// This distinction is load-bearing: a tool's own default field list must
// never trigger projection, only an explicitly supplied one. Tool defaults
// therefore live on the tool definition (for documentation), not here.
type Options struct {
	Mode            Mode
	Format          Format
	RequestedFields []string
	Page            *int
	PageSize        *int
	Limit           *int
}

// Defaults is the per-tool shaping defaults fragment. It seeds Options for
// everything the caller left unspecified.
type Defaults struct {
	Mode  Mode
	Limit int
}

// ParseOptions extracts shaping options from a tool's argument bag,
// merging in the tool defaults. Validation is deliberately loose: unknown
// keys are ignored and unrecognized enum values fall back to defaults.
// Out-of-range page/page_size values are preserved as supplied; the
// pipeline degrades rather than rejects.
func ParseOptions(args map[string]any, defaults Defaults) Options {
	opts := Options{
		Mode:   ModeDetailed,
		Format: FormatJSON,
	}
	if defaults.Mode != "" {
		opts.Mode = defaults.Mode
	}
	if defaults.Limit > 0 {
		limit := defaults.Limit
		opts.Limit = &limit
	}

	if v, ok := args["mode"]; ok {
		switch Mode(asString(v)) {
		case ModeCompact, ModeSummary, ModeDetailed:
			opts.Mode = Mode(asString(v))
		}
	}
	if v, ok := args["format"]; ok {
		switch Format(asString(v)) {
		case FormatJSON, FormatTable, FormatCSV:
			opts.Format = Format(asString(v))
		}
	}
	if v, ok := args["fields"]; ok {
		if fields := asStringSlice(v); fields != nil {
			opts.RequestedFields = fields
		}
	}
	if v, ok := args["page"]; ok {
		if n, ok := asInt(v); ok {
			opts.Page = &n
		}
	}
	if v, ok := args["page_size"]; ok {
		if n, ok := asInt(v); ok {
			opts.PageSize = &n
		}
	}
	if v, ok := args["limit"]; ok {
		if n, ok := asInt(v); ok {
			opts.Limit = &n
		}
	}

	return opts
}

// OptionKeys lists the argument names consumed by ParseOptions. The catalog
// uses it to separate shaping options from tool-specific filter arguments.
var OptionKeys = map[string]bool{
	"mode":      true,
	"format":    true,
	"fields":    true,
	"page":      true,
	"page_size": true,
	"limit":     true,
	"sections":  true,
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		out := make([]string, len(vv))
		copy(out, vv)
		return out
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
