package shape

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable renders data as a Markdown pipe-table. The header row is the
// key insertion order of the first array element; missing values render as
// empty cells and non-object elements render as one-column rows. Non-array
// data is wrapped as a single row.
func renderTable(data any) string {
	rows, header, empty := tabulate(data)
	if empty {
		return NoDataMessage
	}

	t := table.NewWriter()
	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, cells := range rows {
		row := make(table.Row, len(cells))
		for i, cell := range cells {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	return t.RenderMarkdown()
}

// renderCSV renders data with the same row/column derivation as the table
// renderer. Values containing a comma or a double quote are wrapped in
// double quotes, with embedded quotes escaped by doubling.
func renderCSV(data any) string {
	rows, header, empty := tabulate(data)
	if empty {
		return NoDataMessage
	}

	var b strings.Builder
	writeCSVRow(&b, header)
	for _, cells := range rows {
		b.WriteString("\n")
		writeCSVRow(&b, cells)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(escapeCSV(cell))
	}
}

func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// tabulate derives a header and string cell rows from arbitrary shaped
// data. Objects contribute one row keyed by the first element's columns;
// anything else becomes a one-column row.
func tabulate(data any) (rows [][]string, header []string, empty bool) {
	arr, ok := data.([]any)
	if !ok {
		// Single values (including a summary-mode object) render as one row.
		arr = []any{data}
	}
	if len(arr) == 0 {
		return nil, nil, true
	}

	header = objectKeys(arr[0])
	if header == nil {
		header = []string{"value"}
	}

	rows = make([][]string, 0, len(arr))
	for _, item := range arr {
		obj := asObject(item)
		if obj == nil {
			rows = append(rows, []string{cellString(item)})
			continue
		}
		cells := make([]string, len(header))
		for i, key := range header {
			if value, present := obj.Get(key); present {
				cells[i] = cellString(value)
			}
		}
		rows = append(rows, cells)
	}
	return rows, header, false
}

// cellString renders a single JSON value for a table or CSV cell. Nested
// structures are serialized as compact JSON.
func cellString(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case json.Number:
		return vv.String()
	case bool:
		return strconv.FormatBool(vv)
	case *Object, []any:
		encoded, err := json.Marshal(vv)
		if err != nil {
			return fmt.Sprintf("%v", vv)
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", vv)
	}
}
