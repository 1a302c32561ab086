package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainTableWriter(t *testing.T) {
	var buf strings.Builder
	w := NewPlainTableWriter(&buf)
	w.SetHeaders([]string{"Name", "Description"})
	w.AppendRow([]string{"get_congress_trading", "Congressional trades"})
	w.AppendRow([]string{"get_lobbying", "Lobbying spend"})
	w.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[0], "DESCRIPTION")

	// Columns align: DESCRIPTION starts at the same offset in every line.
	offset := strings.Index(lines[0], "DESCRIPTION")
	assert.Equal(t, offset, strings.Index(lines[1], "Congressional"))
	assert.Equal(t, offset, strings.Index(lines[2], "Lobbying"))
}

func TestPlainTableWriterShortRow(t *testing.T) {
	var buf strings.Builder
	w := NewPlainTableWriter(&buf)
	w.SetHeaders([]string{"A", "B", "C"})
	w.AppendRow([]string{"only"})
	w.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "only")
}

func TestPlainTableWriterNoHeaders(t *testing.T) {
	var buf strings.Builder
	w := NewPlainTableWriter(&buf)
	w.Render()
	assert.Empty(t, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a very ...", Truncate("a very long description", 10))
	assert.Equal(t, "abc", Truncate("abc", 3))
}
