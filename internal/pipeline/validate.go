package pipeline

// validate.go provides the structural and content checks run before
// cleaning. Both checks accumulate every problem they find rather than
// stopping at the first, so one load attempt reports the full picture.

import (
	"log/slog"
	"regexp"

	"github.com/JonMunkholm/intake/internal/company"
	"github.com/JonMunkholm/intake/internal/dataset"
)

// zipFormatRE is the well-formed ZIP shape: 5 digits, optionally +4.
var zipFormatRE = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ValidateSchema checks that every schema column exists in the table's
// header. Extra columns are tolerated. Returns a *SchemaError listing all
// missing columns in canonical order, or nil.
func ValidateSchema(t *dataset.Table) error {
	var missing []string
	for _, col := range company.Columns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// ValidateContent checks that no required field contains nulls, failing
// with a *ContentError naming every offending field and its count. When
// the null check passes, rows whose ZIP Code does not match the
// 5-digit(+4) shape are counted and logged as a warning; malformed ZIPs
// never block processing since cleaning re-derives them.
func ValidateContent(t *dataset.Table) error {
	var fields []FieldNulls
	for _, col := range company.RequiredFields {
		if n := t.NullCount(col); n > 0 {
			fields = append(fields, FieldNulls{Field: col, Count: n})
		}
	}
	if len(fields) > 0 {
		return &ContentError{Fields: fields}
	}

	if n := invalidZipCount(t); n > 0 {
		slog.Warn("records with invalid ZIP code format", "count", n)
	}
	return nil
}

// invalidZipCount counts rows whose non-null ZIP Code fails the format
// check. Nulls are the null check's business, not the format check's.
func invalidZipCount(t *dataset.Table) int {
	n := 0
	for _, row := range t.Rows {
		if cell, ok := row[company.ColZIPCode]; ok && cell.Valid && !zipFormatRE.MatchString(cell.String) {
			n++
		}
	}
	return n
}
