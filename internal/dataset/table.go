// Package dataset provides the in-memory table model for company data:
// ordered rows of column-name -> nullable string cells.
//
// Null semantics follow the file boundary: an empty CSV field reads as a
// null cell, and a null cell writes back as an empty field. Whitespace-only
// fields read as non-null; collapsing those to null is the cleaning step's
// job, not the loader's.
package dataset

// Cell is a string value that may be null. The zero value is null.
type Cell struct {
	String string
	Valid  bool
}

// NewCell returns a non-null cell holding s.
func NewCell(s string) Cell {
	return Cell{String: s, Valid: true}
}

// Row maps column name to cell value.
type Row map[string]Cell

// Table is an ordered sequence of rows sharing a column set.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given columns.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// NullCount returns the number of null cells in the named column.
// Rows missing the key entirely count as null.
func (t *Table) NullCount(column string) int {
	n := 0
	for _, row := range t.Rows {
		if cell, ok := row[column]; !ok || !cell.Valid {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		dup := make(Row, len(row))
		for k, v := range row {
			dup[k] = v
		}
		out.Rows[i] = dup
	}
	return out
}
