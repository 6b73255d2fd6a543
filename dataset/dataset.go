// Package dataset holds the in-memory tabular dataset model, cell value
// sanitization, and persistence to compressed-binary and CSV files.
package dataset

import (
	"fmt"
)

// Dataset is an ordered tabular dataset: named columns and rows of cells.
// Row order is significant and is preserved identically across every output
// format.
type Dataset struct {
	Columns []string
	Rows    [][]Value
}

// New creates an empty dataset with the given column names.
func New(columns ...string) *Dataset {
	return &Dataset{Columns: columns}
}

// Append adds one row. The row must have exactly one cell per column.
func (d *Dataset) Append(row ...Value) error {
	if len(row) != len(d.Columns) {
		return fmt.Errorf("dataset: row has %d cells, want %d", len(row), len(d.Columns))
	}
	d.Rows = append(d.Rows, row)
	return nil
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// NumCols returns the number of columns.
func (d *Dataset) NumCols() int {
	return len(d.Columns)
}
