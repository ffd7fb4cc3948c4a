// Package datatable filters and renders in-memory lists the way the
// dashboard tables do: a free-text search across searchable columns plus
// exact-value filters, always preserving input order.
package datatable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

type Column[T any] struct {
	Key        string
	Header     string
	Searchable bool
	Value      func(T) string
}

type Query struct {
	Search  string
	Filters map[string]string
}

// Filter returns the rows whose searchable columns contain query, compared
// case-insensitively. A blank query returns every row.
func Filter[T any](rows []T, columns []Column[T], query string) []T {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, col := range columns {
			if !col.Searchable || col.Value == nil {
				continue
			}
			if strings.Contains(strings.ToLower(col.Value(row)), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Apply runs the search and then keeps rows whose column values equal every
// filter value, ignoring case. A filter on an unknown column matches nothing.
func Apply[T any](rows []T, columns []Column[T], q Query) []T {
	out := Filter(rows, columns, q.Search)
	for key, want := range q.Filters {
		want = strings.TrimSpace(want)
		if want == "" {
			continue
		}
		col, ok := find(columns, key)
		if !ok {
			return make([]T, 0)
		}
		kept := make([]T, 0, len(out))
		for _, row := range out {
			if strings.EqualFold(col.Value(row), want) {
				kept = append(kept, row)
			}
		}
		out = kept
	}
	return out
}

func find[T any](columns []Column[T], key string) (Column[T], bool) {
	for _, col := range columns {
		if col.Key == key && col.Value != nil {
			return col, true
		}
	}
	return Column[T]{}, false
}

type ColumnView struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}

// View is what a table renders: translated headers plus the visible rows.
type View[T any] struct {
	Title             string       `json:"title"`
	SearchPlaceholder string       `json:"search_placeholder"`
	Columns           []ColumnView `json:"columns"`
	Rows              []T          `json:"rows"`
	Total             int          `json:"total"`
	Matched           int          `json:"matched"`
	EmptyMessage      string       `json:"empty_message,omitempty"`
}

func NewView[T any](title, placeholder, emptyMessage string, columns []Column[T], all, visible []T) View[T] {
	views := make([]ColumnView, 0, len(columns))
	for _, col := range columns {
		views = append(views, ColumnView{Key: col.Key, Header: col.Header})
	}
	if visible == nil {
		visible = []T{}
	}
	v := View[T]{
		Title:             title,
		SearchPlaceholder: placeholder,
		Columns:           views,
		Rows:              visible,
		Total:             len(all),
		Matched:           len(visible),
	}
	if len(visible) == 0 {
		v.EmptyMessage = emptyMessage
	}
	return v
}

// WriteCSV writes a header line of column headers followed by one line per row.
// Cells that a spreadsheet would evaluate as a formula are prefixed with a
// single quote.
func WriteCSV[T any](w io.Writer, rows []T, columns []Column[T]) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(columns))
	for _, col := range columns {
		header = append(header, col.Header)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = ""
			if col.Value != nil {
				record[i] = csvCell(col.Value(row))
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}
