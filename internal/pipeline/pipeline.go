// Package pipeline implements the company CSV processing pipeline:
// source checks, schema and content validation, cleaning, typed record
// conversion, and persistence of the cleaned table.
//
// The validation steps are package-level functions over tables, usable on
// their own (the web layer runs them against request bodies). Processor
// ties them together for file-based batch runs.
//
// Validation failures are fail-fast and enumerate every problem found,
// not just the first: correcting bad source data is a one-shot batch
// operation where partial feedback wastes a round trip.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/intake/internal/company"
	"github.com/JonMunkholm/intake/internal/dataset"
)

// Processor loads, validates, cleans, and persists one company CSV file.
// Not safe for concurrent use; callers serialize access or use one
// Processor per file.
type Processor struct {
	path  string
	table *dataset.Table
}

// New returns a Processor for the file at path. No I/O happens until Load.
func New(path string) *Processor {
	return &Processor{path: path}
}

// ValidateSource checks that the path resolves to an existing .csv file.
// Metadata probe only; the file is not opened.
func (p *Processor) ValidateSource() error {
	info, err := os.Stat(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, p.path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", p.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, p.path)
	}
	if ext := filepath.Ext(p.path); !strings.EqualFold(ext, ".csv") {
		return fmt.Errorf("%w: got %q", ErrSourceFormat, ext)
	}
	return nil
}

// Load runs the full pipeline: source check, read, schema validation,
// content validation, clean. On success the cleaned table is stored and
// returned. On failure at any step the stored table is cleared, so a
// failed reload leaves the Processor as if nothing was ever loaded.
func (p *Processor) Load() (*dataset.Table, error) {
	cleaned, err := p.load()
	if err != nil {
		p.table = nil
		slog.Error("processing csv file failed", "path", p.path, "error", err)
		return nil, err
	}

	p.table = cleaned
	slog.Info("processed csv file", "path", p.path, "rows", len(cleaned.Rows))
	return cleaned, nil
}

func (p *Processor) load() (*dataset.Table, error) {
	if err := p.ValidateSource(); err != nil {
		return nil, err
	}

	slog.Info("reading csv file", "path", p.path)
	t, err := dataset.ReadFile(p.path)
	if err != nil {
		return nil, err
	}

	if err := ValidateSchema(t); err != nil {
		return nil, err
	}
	if err := ValidateContent(t); err != nil {
		return nil, err
	}

	return Clean(t), nil
}

// Records converts the stored cleaned table to typed company records,
// order preserved. Rows that cannot convert are skipped with a logged
// diagnostic; partial success is the contract. Fails with ErrNoData if
// nothing is loaded.
func (p *Processor) Records() ([]company.Record, error) {
	if p.table == nil {
		return nil, ErrNoData
	}

	records := make([]company.Record, 0, len(p.table.Rows))
	for i, row := range p.table.Rows {
		rec, err := company.FromRow(row)
		if err != nil {
			slog.Warn("skipping unconvertible row", "row", i+1, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save writes the stored cleaned table as CSV to outputPath, header
// first. Fails with ErrNoData if nothing is loaded.
func (p *Processor) Save(outputPath string) error {
	if p.table == nil {
		return ErrNoData
	}
	if err := p.table.WriteFile(outputPath); err != nil {
		return err
	}
	slog.Info("saved processed data", "path", outputPath, "rows", len(p.table.Rows))
	return nil
}

// Table returns the stored cleaned table, or nil before a successful Load.
func (p *Processor) Table() *dataset.Table {
	return p.table
}
