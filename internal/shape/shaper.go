package shape

import (
	"encoding/json"
)

// Result is the shaped envelope returned to the caller. Pagination is
// present iff any of page/page_size/limit was supplied; Summary is always
// present on a successful transform and absent on the error path.
type Result struct {
	Data       any       `json:"data"`
	Pagination *PageInfo `json:"pagination,omitempty"`
	Summary    *Summary  `json:"summary,omitempty"`
}

// PageInfo describes the page slice that was applied.
type PageInfo struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Summary describes the transform that was applied. TotalItems is the
// original pre-transform item count.
type Summary struct {
	TotalItems     int      `json:"total_items"`
	FieldsIncluded []string `json:"fields_included"`
	Mode           Mode     `json:"mode"`
	Format         Format   `json:"format"`
}

// ErrorData is the data payload of a shaped upstream failure.
type ErrorData struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

const (
	defaultPageSize = 50
	summarySampleN  = 5

	// NoDataMessage is what the table and CSV renderers emit for an
	// empty array.
	NoDataMessage = "No data available"
)

// Apply runs the shaping pipeline over an upstream envelope:
// field projection, limiting, pagination, then mode/format rendering,
// in that fixed order. It is a pure function: it never fails, performs
// no I/O and allocates fresh output structures, so concurrent calls need
// no coordination.
func Apply(env Envelope, opts Options) Result {
	// Upstream failures short-circuit the pipeline entirely: no summary,
	// no pagination, just the error passed through as data.
	if env.IsError() {
		return Result{Data: ErrorData{Error: env.Err, Status: env.Status}}
	}

	data := env.Data

	totalItems := 1
	if arr, ok := data.([]any); ok {
		totalItems = len(arr)
	}

	if len(opts.RequestedFields) > 0 {
		data = projectFields(data, opts.RequestedFields)
	}

	if opts.Limit != nil && *opts.Limit > 0 {
		if arr, ok := data.([]any); ok && len(arr) > *opts.Limit {
			data = arr[:*opts.Limit]
		}
	}

	var pagination *PageInfo
	if opts.Page != nil || opts.PageSize != nil || opts.Limit != nil {
		data, pagination = paginate(data, opts)
	}

	data = applyMode(data, opts.Mode)

	switch opts.Format {
	case FormatTable:
		data = renderTable(data)
	case FormatCSV:
		data = renderCSV(data)
	}

	fieldsIncluded := opts.RequestedFields
	if fieldsIncluded == nil {
		fieldsIncluded = []string{"all"}
	}

	return Result{
		Data:       data,
		Pagination: pagination,
		Summary: &Summary{
			TotalItems:     totalItems,
			FieldsIncluded: fieldsIncluded,
			Mode:           opts.Mode,
			Format:         opts.Format,
		},
	}
}

// projectFields rewrites each object in an array to contain only the
// requested keys. Keys absent on a given object are silently skipped; an
// object carrying none of the requested keys passes through unchanged so
// a caller-supplied filter can never produce an empty, misleading object.
// Non-array data and non-object elements pass through unmodified.
func projectFields(data any, fields []string) any {
	arr, ok := data.([]any)
	if !ok {
		return data
	}

	out := make([]any, len(arr))
	for i, item := range arr {
		obj := asObject(item)
		if obj == nil {
			out[i] = item
			continue
		}

		projected := NewObject()
		for _, field := range fields {
			if value, present := obj.Get(field); present {
				projected.Set(field, value)
			}
		}

		if projected.Len() == 0 {
			out[i] = item
			continue
		}
		out[i] = projected
	}
	return out
}

// paginate slices an array according to page/page_size and reports the
// slice geometry. Non-array data is left untouched under a trivial
// single-item pagination block.
//
// Defaults apply only when an option is absent: a supplied page_size of
// zero or less is preserved and yields a degenerate (but non-crashing)
// result with zero total pages and an empty slice.
func paginate(data any, opts Options) (any, *PageInfo) {
	arr, ok := data.([]any)
	if !ok {
		return data, &PageInfo{
			CurrentPage: 1,
			PageSize:    1,
			TotalItems:  1,
			TotalPages:  1,
		}
	}

	page := 1
	if opts.Page != nil {
		page = *opts.Page
	}
	pageSize := defaultPageSize
	if opts.PageSize != nil {
		pageSize = *opts.PageSize
	}

	totalItems := len(arr)

	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}

	start := 0
	end := 0
	if pageSize > 0 {
		start = (page - 1) * pageSize
		if start < 0 {
			start = 0
		}
		if start > totalItems {
			start = totalItems
		}
		end = start + pageSize
		if end > totalItems {
			end = totalItems
		}
	}

	return arr[start:end], &PageInfo{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// applyMode transforms data according to the requested density. The
// format renderers run on the mode-transformed value, so e.g. a table of
// a summary-mode array shows the summary object's fields, not the rows.
func applyMode(data any, mode Mode) any {
	switch mode {
	case ModeCompact:
		encoded, err := json.Marshal(data)
		if err != nil {
			// Undecodable values cannot come out of DecodeJSON; treat a
			// marshal failure as a caller error and degrade to a message.
			return "unserializable data"
		}
		return string(encoded)

	case ModeSummary:
		return summarize(data)

	default:
		return data
	}
}

// summarize replaces data with a compact structural description: arrays
// become {type, count, sample, fields}, everything else {type, preview}.
func summarize(data any) any {
	arr, ok := data.([]any)
	if !ok {
		obj := NewObject()
		obj.Set("type", "object")
		obj.Set("preview", data)
		return obj
	}

	sample := arr
	if len(sample) > summarySampleN {
		sample = sample[:summarySampleN]
	}

	fields := []string{}
	for _, item := range arr {
		if keys := objectKeys(item); keys != nil {
			fields = keys
			break
		}
	}

	obj := NewObject()
	obj.Set("type", "array")
	obj.Set("count", len(arr))
	obj.Set("sample", sample)
	obj.Set("fields", fields)
	return obj
}
