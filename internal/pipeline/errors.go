package pipeline

import (
	"fmt"
	"strings"
)

// Sentinel errors for source and state preconditions.
var (
	// ErrSourceNotFound indicates the source path does not resolve to a file.
	ErrSourceNotFound = fmt.Errorf("source file not found")

	// ErrSourceFormat indicates the source file is not a CSV.
	ErrSourceFormat = fmt.Errorf("source file must be a CSV")

	// ErrNoData indicates Records or Save was called before a successful Load.
	ErrNoData = fmt.Errorf("no data loaded: call Load first")
)

// SchemaError reports every required column absent from a table's header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// FieldNulls pairs a required field with its null-cell count.
type FieldNulls struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// ContentError reports every required field containing nulls, with counts.
type ContentError struct {
	Fields []FieldNulls
}

func (e *ContentError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %d", f.Field, f.Count)
	}
	return "null values found in required fields: " + strings.Join(parts, ", ")
}
