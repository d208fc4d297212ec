package csv

import "strings"

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	// Remove leading '='
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	// Remove any surrounding quotes
	s = strings.Trim(s, `"'`)

	return s
}

// CleanHeader normalizes a header cell: CleanCell plus collapsing internal
// whitespace runs, so "ZIP  Code" and "ZIP Code" match the same column.
func CleanHeader(s string) string {
	return strings.Join(strings.Fields(CleanCell(s)), " ")
}
