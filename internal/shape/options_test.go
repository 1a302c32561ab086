package shape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts := ParseOptions(map[string]any{}, Defaults{})

	assert.Equal(t, ModeDetailed, opts.Mode)
	assert.Equal(t, FormatJSON, opts.Format)
	assert.Nil(t, opts.RequestedFields)
	assert.Nil(t, opts.Page)
	assert.Nil(t, opts.PageSize)
	assert.Nil(t, opts.Limit)
}

func TestParseOptionsToolDefaults(t *testing.T) {
	opts := ParseOptions(map[string]any{}, Defaults{Mode: ModeSummary, Limit: 25})

	assert.Equal(t, ModeSummary, opts.Mode)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, 25, *opts.Limit)
}

func TestParseOptionsCallerOverridesDefaults(t *testing.T) {
	args := map[string]any{
		"mode":      "compact",
		"format":    "csv",
		"fields":    []any{"ticker", "amount"},
		"page":      float64(2),
		"page_size": float64(10),
		"limit":     float64(100),
	}

	opts := ParseOptions(args, Defaults{Mode: ModeSummary, Limit: 25})

	assert.Equal(t, ModeCompact, opts.Mode)
	assert.Equal(t, FormatCSV, opts.Format)
	assert.Equal(t, []string{"ticker", "amount"}, opts.RequestedFields)
	assert.Equal(t, 2, *opts.Page)
	assert.Equal(t, 10, *opts.PageSize)
	assert.Equal(t, 100, *opts.Limit)
}

func TestParseOptionsLooseValidation(t *testing.T) {
	args := map[string]any{
		"mode":    "verbose", // unknown enum value: keep default
		"format":  "xml",
		"fields":  "not-a-list",
		"page":    "3", // numeric strings are accepted
		"unknown": true,
	}

	opts := ParseOptions(args, Defaults{})

	assert.Equal(t, ModeDetailed, opts.Mode)
	assert.Equal(t, FormatJSON, opts.Format)
	assert.Nil(t, opts.RequestedFields)
	require.NotNil(t, opts.Page)
	assert.Equal(t, 3, *opts.Page)
}

func TestParseOptionsZeroPageSizePreserved(t *testing.T) {
	opts := ParseOptions(map[string]any{"page_size": float64(0)}, Defaults{})

	require.NotNil(t, opts.PageSize)
	assert.Equal(t, 0, *opts.PageSize)
}

func TestParseOptionsExplicitEmptyFields(t *testing.T) {
	opts := ParseOptions(map[string]any{"fields": []any{}}, Defaults{})

	// Explicitly supplied but empty: recorded as non-nil so the summary
	// reflects it, while projection (which requires at least one field)
	// stays off.
	require.NotNil(t, opts.RequestedFields)
	assert.Empty(t, opts.RequestedFields)
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected int
		ok       bool
	}{
		{"int", 7, 7, true},
		{"float64", float64(12), 12, true},
		{"json.Number", json.Number("42"), 42, true},
		{"numeric string", "9", 9, true},
		{"garbage string", "abc", 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := asInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}
