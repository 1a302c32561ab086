// Package shape implements the response-shaping pipeline that every tool
// result passes through before being returned to the caller.
//
// The pipeline is a pure function over an upstream envelope and a set of
// caller-supplied options, applied in a fixed order:
//
//  1. Field projection - prune array elements to an explicitly requested
//     key list (a tool's default field list never triggers projection).
//  2. Limiting - positional truncation of arrays to a hard cap.
//  3. Pagination - slice the (post-limit) array into 1-based pages and
//     report the slice geometry. Only runs when the caller supplied at
//     least one of page, page_size or limit.
//  4. Mode/format rendering - compact/summary/detailed density transforms
//     followed by json/table/csv serialization.
//
// JSON objects flow through the pipeline as insertion-ordered maps so the
// table and CSV renderers can derive column order from the upstream
// payload's own key order.
//
// The package also hosts the section selector, a coarse pre-stage used by
// the single aggregate-snapshot endpoint to prune a flat object down to
// named capability groups before the generic pipeline runs.
package shape
