package pipeline

import (
	"regexp"
	"strings"

	"github.com/JonMunkholm/intake/internal/company"
	"github.com/JonMunkholm/intake/internal/dataset"
)

// zipExtractRE matches the leftmost run of 5 digits anywhere in a value.
// This truncates ZIP+4 codes and discards malformed values in one step.
var zipExtractRE = regexp.MustCompile(`\d{5}`)

// Clean returns a normalized copy of the table projected onto the ten
// schema columns. The input is never mutated and Clean never fails.
//
// Steps, in order:
//  1. Strip surrounding whitespace from every cell; empty after strip
//     becomes null.
//  2. Uppercase State (null stays null).
//  3. Re-derive ZIP Code as the first 5-digit run in the stripped value;
//     no run means null.
//
// Step 1 must run first: steps 2 and 3 rely on its null-for-empty
// semantics. Clean is idempotent.
func Clean(t *dataset.Table) *dataset.Table {
	out := dataset.New(company.Columns)
	out.Rows = make([]dataset.Row, 0, len(t.Rows))

	for _, row := range t.Rows {
		cleaned := make(dataset.Row, len(company.Columns))
		for _, col := range company.Columns {
			cleaned[col] = stripCell(row[col])
		}

		if state := cleaned[company.ColState]; state.Valid {
			cleaned[company.ColState] = dataset.NewCell(strings.ToUpper(state.String))
		}
		cleaned[company.ColZIPCode] = extractZip(cleaned[company.ColZIPCode])

		out.Rows = append(out.Rows, cleaned)
	}

	return out
}

// stripCell trims whitespace and converts empty results to null.
func stripCell(c dataset.Cell) dataset.Cell {
	if !c.Valid {
		return dataset.Cell{}
	}
	s := strings.TrimSpace(c.String)
	if s == "" {
		return dataset.Cell{}
	}
	return dataset.NewCell(s)
}

// extractZip reduces a ZIP cell to its first 5-digit run, or null.
func extractZip(c dataset.Cell) dataset.Cell {
	if !c.Valid {
		return dataset.Cell{}
	}
	if m := zipExtractRE.FindString(c.String); m != "" {
		return dataset.NewCell(m)
	}
	return dataset.Cell{}
}
