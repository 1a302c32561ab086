package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"marketlens/internal/shape"
)

// Resources returns the static resource catalog. Contents are generated
// from the registry itself so they can never drift from the tool catalog.
func Resources() []ResourceDef {
	return []ResourceDef{
		{
			URI:         "marketlens://catalog/tools",
			Name:        "Tool catalog",
			Description: "All available tools with their descriptions and default shaping options",
			MIMEType:    "application/json",
			Content:     toolCatalogJSON,
		},
		{
			URI:         "marketlens://catalog/sections",
			Name:        "Snapshot sections",
			Description: "The named sections of the ticker snapshot and the keys each exposes",
			MIMEType:    "application/json",
			Content:     sectionMapJSON,
		},
		{
			URI:         "marketlens://docs/shaping",
			Name:        "Response shaping options",
			Description: "How mode, format, fields, page, page_size and limit transform tool results",
			MIMEType:    "text/markdown",
			Content:     shapingDocsMarkdown,
		},
	}
}

func toolCatalogJSON(r *Registry) (string, error) {
	type toolEntry struct {
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		RequiresTicker bool     `json:"requires_ticker"`
		DefaultLimit   int      `json:"default_limit,omitempty"`
		DefaultFields  []string `json:"default_fields,omitempty"`
	}

	entries := make([]toolEntry, 0, len(r.Tools()))
	for _, tool := range r.Tools() {
		entries = append(entries, toolEntry{
			Name:           tool.Name,
			Description:    tool.Description,
			RequiresTicker: tool.RequiresTicker,
			DefaultLimit:   tool.Defaults.Limit,
			DefaultFields:  tool.DefaultFields,
		})
	}

	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tool catalog: %w", err)
	}
	return string(encoded), nil
}

func sectionMapJSON(_ *Registry) (string, error) {
	// Emit in the documented section order rather than map order.
	ordered := shape.NewObject()
	for _, name := range shape.SectionNames() {
		ordered.Set(name, shape.SectionMap[name])
	}
	encoded, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode section map: %w", err)
	}
	return string(encoded), nil
}

func shapingDocsMarkdown(_ *Registry) (string, error) {
	return strings.TrimSpace(`
# Response shaping

Every tool accepts the same shaping options on top of its own filters.
Stages run in a fixed order: field projection, limiting, pagination, then
mode/format rendering.

## mode

- detailed (default): full data, unchanged.
- summary: arrays become {type, count, sample, fields}; other values
  become {type, preview}.
- compact: the data is serialized to a single JSON string.

## format

- json (default): structured data.
- table: a Markdown pipe-table. Columns follow the first row's key order;
  empty results render "No data available".
- csv: same rows and columns as table, comma-separated, quotes doubled.

## fields

An explicit list of fields to keep on each row. Rows that contain none of
the requested fields are returned whole rather than as empty objects. A
tool's documented default fields are informational only; projection never
happens unless you pass fields yourself.

## page, page_size, limit

limit caps the number of items considered; page/page_size (1-based,
default size 50) slice the capped list. Supplying any of the three adds a
pagination block with current_page, page_size, total_items, total_pages,
has_next and has_previous.
`), nil
}
