// Package csv provides reading and writing helpers for delimited company
// data files.
//
// Readers are wrapped to survive the common artifacts of spreadsheet
// exports: UTF-8 BOMs, invalid byte sequences, ragged rows, and lazy
// quoting. Writers buffer output and flush once at the end.
package csv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// writeBufferSize is the buffered writer size for CSV output.
const writeBufferSize = 32 * 1024

// Read parses all records from r. The reader is wrapped with BOM skipping
// and UTF-8 sanitization first. Rows may have varying field counts; quoting
// is lenient.
func Read(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(wrapReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

// ReadFile parses all records from the file at path.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Write writes records to w as CSV, buffered.
func Write(w io.Writer, records [][]string) error {
	bw := bufio.NewWriterSize(w, writeBufferSize)
	cw := csv.NewWriter(bw)

	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return bw.Flush()
}

// WriteFile writes records to the file at path, creating or truncating it.
func WriteFile(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
