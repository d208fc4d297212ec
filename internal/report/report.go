// Package report renders aligned plain-text summary tables for CLI
// output. Column widths use display width rather than byte length so
// wide characters in company data do not break alignment.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a two-column label/value summary.
type Table struct {
	title string
	rows  [][2]string
}

// NewTable returns an empty summary table with a title.
func NewTable(title string) *Table {
	return &Table{title: title}
}

// Add appends a label/value row.
func (t *Table) Add(label, value string) *Table {
	t.rows = append(t.rows, [2]string{label, value})
	return t
}

// AddInt appends a label with an integer value.
func (t *Table) AddInt(label string, value int) *Table {
	return t.Add(label, fmt.Sprintf("%d", value))
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	labelWidth := 0
	valueWidth := runewidth.StringWidth(t.title)
	for _, row := range t.rows {
		if lw := runewidth.StringWidth(row[0]); lw > labelWidth {
			labelWidth = lw
		}
		if vw := runewidth.StringWidth(row[1]); vw > valueWidth {
			valueWidth = vw
		}
	}

	var b strings.Builder
	rule := strings.Repeat("-", labelWidth+valueWidth+5)

	b.WriteString(t.title + "\n")
	b.WriteString(rule + "\n")
	for _, row := range t.rows {
		b.WriteString(pad(row[0], labelWidth))
		b.WriteString("   ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
