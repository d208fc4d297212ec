package pipeline

import (
	"github.com/JonMunkholm/intake/internal/company"
	"github.com/JonMunkholm/intake/internal/dataset"
)

// Report is a read-only diagnostic summary of a raw table: everything the
// validation steps would flag, gathered without failing.
type Report struct {
	RowCount       int          `json:"row_count"`
	Columns        []string     `json:"columns"`
	MissingColumns []string     `json:"missing_columns,omitempty"`
	NullCounts     []FieldNulls `json:"null_counts,omitempty"`
	InvalidZips    int          `json:"invalid_zips"`
	Valid          bool         `json:"valid"`
}

// Analyze inspects a table and reports what validation would find,
// without mutating, logging, or failing. Valid is true when the table
// would pass both the schema and content checks; invalid ZIPs are
// informational only since cleaning re-derives them.
func Analyze(t *dataset.Table) *Report {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)

	r := &Report{
		RowCount:    len(t.Rows),
		Columns:     cols,
		InvalidZips: invalidZipCount(t),
	}

	for _, col := range company.Columns {
		if !t.HasColumn(col) {
			r.MissingColumns = append(r.MissingColumns, col)
		}
	}
	for _, col := range company.RequiredFields {
		if t.HasColumn(col) {
			if n := t.NullCount(col); n > 0 {
				r.NullCounts = append(r.NullCounts, FieldNulls{Field: col, Count: n})
			}
		}
	}

	r.Valid = len(r.MissingColumns) == 0 && len(r.NullCounts) == 0
	return r
}
