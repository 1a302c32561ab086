package cli

import (
	"fmt"
	"io"
	"strings"
)

// PlainTableWriter renders kubectl-style columnar output: uppercase
// headers, space-aligned columns, no box-drawing characters. The format
// survives copy/paste and pipes cleanly into grep, awk and cut.
type PlainTableWriter struct {
	headers      []string
	rows         [][]string
	columnWidths []int
	minPadding   int
	output       io.Writer
}

// NewPlainTableWriter creates a writer that renders to output.
func NewPlainTableWriter(output io.Writer) *PlainTableWriter {
	return &PlainTableWriter{minPadding: 3, output: output}
}

// SetHeaders sets the column headers. Headers render uppercase.
func (w *PlainTableWriter) SetHeaders(headers []string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		upper := strings.ToUpper(h)
		w.headers[i] = upper
		w.columnWidths[i] = len(upper)
	}
}

// AppendRow adds a data row, truncating or padding it to the header width.
func (w *PlainTableWriter) AppendRow(row []string) {
	normalized := make([]string, len(w.headers))
	for i := range w.headers {
		if i < len(row) {
			normalized[i] = row[i]
			if len(row[i]) > w.columnWidths[i] {
				w.columnWidths[i] = len(row[i])
			}
		}
	}
	w.rows = append(w.rows, normalized)
}

// Render writes the table. The last column is never right-padded.
func (w *PlainTableWriter) Render() {
	if len(w.headers) == 0 {
		return
	}
	w.writeRow(w.headers)
	for _, row := range w.rows {
		w.writeRow(row)
	}
}

func (w *PlainTableWriter) writeRow(cells []string) {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w.columnWidths[i]-len(cell)+w.minPadding))
	}
	fmt.Fprintln(w.output, b.String())
}

// Truncate shortens s to max runes with an ellipsis, for description
// columns that would otherwise wrap.
func Truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
