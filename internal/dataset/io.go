package dataset

import (
	"errors"
	"io"

	"github.com/JonMunkholm/intake/internal/csv"
)

// ErrEmpty is returned when the source has no header row.
var ErrEmpty = errors.New("empty dataset: no header row")

// FromRecords builds a table from raw CSV records. The first record is the
// header (cells cleaned of padding and spreadsheet artifacts). Data rows
// shorter than the header are padded with nulls; fields beyond the header
// are dropped.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	header := records[0]
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = csv.CleanHeader(h)
	}

	t := New(columns)
	t.Rows = make([]Row, 0, len(records)-1)

	for _, rec := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(rec) && rec[i] != "" {
				row[col] = NewCell(rec[i])
			} else {
				row[col] = Cell{}
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Records converts the table back to raw CSV records, header first.
// Null cells become empty fields.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)

	header := make([]string, len(t.Columns))
	copy(header, t.Columns)
	out = append(out, header)

	for _, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			if cell, ok := row[col]; ok && cell.Valid {
				rec[i] = cell.String
			}
		}
		out = append(out, rec)
	}

	return out
}

// Read parses a table from CSV data.
func Read(r io.Reader) (*Table, error) {
	records, err := csv.Read(r)
	if err != nil {
		return nil, err
	}
	return FromRecords(records)
}

// ReadFile parses a table from the CSV file at path.
func ReadFile(path string) (*Table, error) {
	records, err := csv.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromRecords(records)
}

// Write writes the table as CSV.
func (t *Table) Write(w io.Writer) error {
	return csv.Write(w, t.Records())
}

// WriteFile writes the table as CSV to the file at path.
func (t *Table) WriteFile(path string) error {
	return csv.WriteFile(path, t.Records())
}
