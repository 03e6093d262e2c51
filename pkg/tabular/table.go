// pkg/tabular/table.go

package tabular

import (
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/hashicorp/go-multierror"
)

// Row is one CSV record in header order.
type Row []string

// Table is an ordered CSV dataset with named columns.
type Table struct {
	Path    string
	Headers []string
	Rows    []Row

	index map[string]int
}

// NewTable builds a table over the given headers.
func NewTable(path string, headers []string) *Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	return &Table{Path: path, Headers: headers, index: index}
}

// HasField reports whether the table has a column with the given name.
func (t *Table) HasField(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Field returns the named column of a row, or "" when the column does not
// exist or the row is short.
func (t *Table) Field(row Row, name string) string {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// MissingFields checks that every required column exists among the parsed
// headers. All missing columns are reported together, not just the first.
func (t *Table) MissingFields(required []string) error {
	var merr *multierror.Error
	for _, name := range required {
		if !t.HasField(name) {
			merr = multierror.Append(merr, fmt.Errorf("required column %q not found", name))
		}
	}
	if merr == nil {
		return nil
	}
	return hermes_err.NewMissingFieldError(t.Path, merr.ErrorOrNil())
}

// Search returns every row with any field containing term, case-insensitive.
// The result is a candidate set in original row order; it is never nil.
func (t *Table) Search(term string) []Row {
	needle := strings.ToLower(term)
	matches := make([]Row, 0)
	for _, row := range t.Rows {
		for _, field := range row {
			if strings.Contains(strings.ToLower(field), needle) {
				matches = append(matches, row)
				break
			}
		}
	}
	return matches
}

// Describe renders a row as "Header=value" pairs for candidate menus.
func (t *Table) Describe(row Row) string {
	parts := make([]string, 0, len(t.Headers))
	for i, h := range t.Headers {
		if i < len(row) {
			parts = append(parts, h+"="+row[i])
		}
	}
	return strings.Join(parts, ", ")
}
