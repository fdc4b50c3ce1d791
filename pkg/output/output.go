// Package output renders CLI results as tables, key-value panels, json or
// csv.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/usedetail/detail-cli/pkg/paginate"
)

// Format selects the output rendering for list commands.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat parses a user-supplied format value.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatTable, FormatJSON, FormatCSV:
		return Format(raw), nil
	default:
		return "", fmt.Errorf("%w: %q (expected table, json or csv)", ErrInvalidFormat, raw)
	}
}

// Machine reports whether the format is machine-readable, meaning
// non-essential messages (update notices, progress) must be suppressed to
// avoid corrupting structured output.
func (f Format) Machine() bool {
	return f == FormatJSON || f == FormatCSV
}

// Formattable is implemented by row types that can be rendered in table and
// csv listings.
type Formattable interface {
	// Headers returns the column headers.
	Headers() []string
	// Row returns the column values for this item.
	Row() []string
}

// listEnvelope is the json shape of a listing.
type listEnvelope[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// List renders one page of items in the requested format. Table output ends
// with a "Page: X of Y" line; json carries the same envelope fields.
func List[T Formattable](w io.Writer, items []T, total, page, limit int, format Format) error {
	totalPages := paginate.TotalPages(total, limit)

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if items == nil {
			items = []T{}
		}
		return encoder.Encode(listEnvelope[T]{
			Items:      items,
			Total:      total,
			Page:       page,
			TotalPages: totalPages,
		})

	case FormatCSV:
		writer := csv.NewWriter(w)
		var zero T
		if err := writer.Write(zero.Headers()); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		for _, item := range items {
			if err := writer.Write(item.Row()); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
		writer.Flush()
		return writer.Error()

	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		var zero T
		writeTabRow(tw, zero.Headers())
		for _, item := range items {
			writeTabRow(tw, item.Row())
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		fmt.Fprintf(w, "\nPage: %d of %d\n", page, totalPages)
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// writeTabRow writes one tab-separated row.
func writeTabRow(w io.Writer, columns []string) {
	for i, column := range columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, column)
	}
	fmt.Fprintln(w)
}
