// Package dataset defines the in-memory tabular representation shared by
// every cleaning and assessment step.
package dataset

import (
	"fmt"
	"strings"
)

// Column is a named, ordered sequence of cell values.
type Column struct {
	Name   string
	Values []Value
}

// Dataset is an ordered sequence of columns with uniform row count and
// unique column names. Transforms take a Dataset and return a new one;
// they never leave an input partially modified.
type Dataset struct {
	Columns []Column
}

// New builds a dataset from columns, enforcing the uniform-length and
// unique-name invariants.
func New(columns ...Column) (*Dataset, error) {
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Values) != len(columns[0].Values) {
			return nil, fmt.Errorf("column %q has %d rows, expected %d",
				c.Name, len(c.Values), len(columns[0].Values))
		}
	}
	return &Dataset{Columns: columns}, nil
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
func (d *Dataset) Index(name string) int {
	for i, c := range d.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the named column, or nil if absent.
func (d *Dataset) Column(name string) *Column {
	if i := d.Index(name); i >= 0 {
		return &d.Columns[i]
	}
	return nil
}

// Row returns the values of row i across all columns, in column order.
func (d *Dataset) Row(i int) []Value {
	row := make([]Value, len(d.Columns))
	for j, c := range d.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Clone returns a deep copy.
func (d *Dataset) Clone() *Dataset {
	cols := make([]Column, len(d.Columns))
	for i, c := range d.Columns {
		vals := make([]Value, len(c.Values))
		copy(vals, c.Values)
		cols[i] = Column{Name: c.Name, Values: vals}
	}
	return &Dataset{Columns: cols}
}

// Rename replaces all column names at once. The count must match and the
// new names must be unique.
func (d *Dataset) Rename(names []string) error {
	if len(names) != len(d.Columns) {
		return fmt.Errorf("got %d names for %d columns", len(names), len(d.Columns))
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return fmt.Errorf("duplicate column name %q", n)
		}
		seen[n] = true
	}
	for i := range d.Columns {
		d.Columns[i].Name = names[i]
	}
	return nil
}

// DropColumns returns a new dataset without the named columns. Unknown
// names are ignored.
func (d *Dataset) DropColumns(names ...string) *Dataset {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	var cols []Column
	for _, c := range d.Columns {
		if drop[c.Name] {
			continue
		}
		vals := make([]Value, len(c.Values))
		copy(vals, c.Values)
		cols = append(cols, Column{Name: c.Name, Values: vals})
	}
	return &Dataset{Columns: cols}
}

// SelectRows returns a new dataset containing only the given row indices,
// in the order given.
func (d *Dataset) SelectRows(keep []int) *Dataset {
	cols := make([]Column, len(d.Columns))
	for i, c := range d.Columns {
		vals := make([]Value, 0, len(keep))
		for _, r := range keep {
			vals = append(vals, c.Values[r])
		}
		cols[i] = Column{Name: c.Name, Values: vals}
	}
	return &Dataset{Columns: cols}
}

// RowKey returns a deterministic identity key for row i over the given
// column indices. Missing values compare equal to each other, and values
// of different kinds never collide.
func (d *Dataset) RowKey(i int, cols []int) string {
	parts := make([]string, len(cols))
	for j, c := range cols {
		parts[j] = d.Columns[c].Values[i].encode()
	}
	// Null byte separator avoids ambiguity with values containing commas.
	return strings.Join(parts, "\x00")
}
