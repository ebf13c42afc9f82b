package domain

import (
	"strconv"
)

// CellKind identifies the value variant stored in a Cell
type CellKind int

const (
	// CellEmpty is a cell with no value
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell
	CellNumber
	// CellText is a textual cell
	CellText
	// CellNA is a cell overwritten with the "not applicable" sentinel
	CellNA
)

// NASentinel is the textual rendering of a CellNA cell
const NASentinel = "NA"

// Cell is a single spreadsheet value. It is an explicit union: exactly one
// variant is meaningful for a given kind. Overwriting a cell with the
// sentinel never changes the representation of other cells in the column.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NumberCell creates a numeric cell
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell creates a textual cell
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NACell creates a sentinel cell
func NACell() Cell {
	return Cell{Kind: CellNA}
}

// String renders the cell the way it is written to a sheet
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	case CellNA:
		return NASentinel
	default:
		return ""
	}
}

// Key returns a canonical comparison key so that a numeric cell and its
// textual rendering (e.g. a kec code read as 10 vs "10") compare equal.
func (c Cell) Key() string {
	return c.String()
}

// Column is an ordered sequence of cells under a single header name
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered sequence of named columns aligned by row index
type Table struct {
	Name    string
	Columns []Column
}

// Column returns the column with the given header name, or false when the
// table declares no such column. Lookup is by exact name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the header names in declaration order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// RowCount returns the number of data rows (header excluded)
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Row returns the cells of a single row in column order
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.Columns))
	for j := range t.Columns {
		if i < len(t.Columns[j].Cells) {
			row[j] = t.Columns[j].Cells[i]
		}
	}
	return row
}

// Clone returns a deep copy of the table. Mutating the copy never touches
// the original.
func (t *Table) Clone() *Table {
	out := &Table{Name: t.Name, Columns: make([]Column, len(t.Columns))}
	for i, col := range t.Columns {
		cells := make([]Cell, len(col.Cells))
		copy(cells, col.Cells)
		out.Columns[i] = Column{Name: col.Name, Cells: cells}
	}
	return out
}

// Equal reports whether two tables have identical names, column order and
// cell values
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.Columns) != len(other.Columns) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i].Name != other.Columns[i].Name {
			return false
		}
		if len(t.Columns[i].Cells) != len(other.Columns[i].Cells) {
			return false
		}
		for j := range t.Columns[i].Cells {
			if t.Columns[i].Cells[j] != other.Columns[i].Cells[j] {
				return false
			}
		}
	}
	return true
}
