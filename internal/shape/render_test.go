package shape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableEmptyArray(t *testing.T) {
	env := Envelope{Data: mustDecode(t, `[]`), Status: 200}

	result := Apply(env, Options{Mode: ModeDetailed, Format: FormatTable})

	assert.Equal(t, NoDataMessage, result.Data)
}

func TestRenderTableArrayOfObjects(t *testing.T) {
	env := Envelope{Data: mustDecode(t, `[
		{"ticker": "AAPL", "amount": 15000, "party": "D"},
		{"ticker": "MSFT", "party": "R"}
	]`), Status: 200}

	result := Apply(env, Options{Mode: ModeDetailed, Format: FormatTable})

	rendered, ok := result.Data.(string)
	require.True(t, ok)

	lines := strings.Split(rendered, "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	// Header order follows the first element's key insertion order.
	header := lines[0]
	assert.Less(t, strings.Index(header, "ticker"), strings.Index(header, "amount"))
	assert.Less(t, strings.Index(header, "amount"), strings.Index(header, "party"))

	// Missing values render as empty cells, not dropped columns.
	assert.Contains(t, rendered, "MSFT")
	for _, line := range lines {
		if strings.Contains(line, "MSFT") {
			assert.Equal(t, strings.Count(header, "|"), strings.Count(line, "|"))
		}
	}
}

func TestRenderTableNonObjectArray(t *testing.T) {
	env := Envelope{Data: mustDecode(t, `["a", "b,c", 3]`), Status: 200}

	result := Apply(env, Options{Mode: ModeDetailed, Format: FormatTable})

	rendered := result.Data.(string)
	assert.Contains(t, rendered, "value")
	assert.Contains(t, rendered, "b,c")
	assert.Contains(t, rendered, "3")
}

func TestRenderTableNestedValuesAsJSON(t *testing.T) {
	env := Envelope{Data: mustDecode(t, `[{"name": "x", "tags": ["a", "b"]}]`), Status: 200}

	result := Apply(env, Options{Mode: ModeDetailed, Format: FormatTable})

	assert.Contains(t, result.Data.(string), `["a","b"]`)
}

func TestRenderCSVEmptyArray(t *testing.T) {
	env := Envelope{Data: mustDecode(t, `[]`), Status: 200}

	result := Apply(env, Options{Mode: ModeDetailed, Format: FormatCSV})

	assert.Equal(t, NoDataMessage, result.Data)
}

func TestRenderCSVArrayOfObjects(t *testing.T) {
	env := Envelope{Data: mustDecode(t, `[
		{"ticker": "AAPL", "issuer": "Apple, Inc.", "note": "said \"buy\""},
		{"ticker": "MSFT", "issuer": "Microsoft", "note": null}
	]`), Status: 200}

	result := Apply(env, Options{Mode: ModeDetailed, Format: FormatCSV})

	rendered := result.Data.(string)
	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "ticker,issuer,note", lines[0])
	assert.Equal(t, `AAPL,"Apple, Inc.","said ""buy"""`, lines[1])
	assert.Equal(t, "MSFT,Microsoft,", lines[2])
}

func TestRenderCSVNonObjectArray(t *testing.T) {
	env := Envelope{Data: mustDecode(t, `[1, "two", true]`), Status: 200}

	result := Apply(env, Options{Mode: ModeDetailed, Format: FormatCSV})

	assert.Equal(t, "value\n1\ntwo\ntrue", result.Data)
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"plain", "plain"},
		{"has,comma", `"has,comma"`},
		{`has"quote`, `"has""quote"`},
		{`both,"`, `"both,"""`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, escapeCSV(tt.in))
	}
}

func TestCellString(t *testing.T) {
	obj := mustDecode(t, `{"k": 1}`)

	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"bool", true, "true"},
		{"number", mustDecode(t, "12.5"), "12.5"},
		{"object", obj, `{"k":1}`},
		{"array", []any{"a"}, `["a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cellString(tt.in))
		})
	}
}
