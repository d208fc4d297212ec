// Package enrich walks validated company records and attaches a
// discovered website to each via the search client. Lookups run
// sequentially, one per record; a record whose lookup finds nothing keeps
// an empty website rather than failing the run.
package enrich

import (
	"context"
	"io"
	"time"

	"github.com/JonMunkholm/intake/internal/company"
	"github.com/JonMunkholm/intake/internal/csv"
	"github.com/JonMunkholm/intake/internal/logging"
	"github.com/google/uuid"
)

// Finder looks up a company website by name. Satisfied by *search.Client;
// tests inject stubs.
type Finder interface {
	SearchCompany(ctx context.Context, companyName string) (string, bool)
}

// Result is one record with its lookup outcome.
type Result struct {
	Record  company.Record
	Website string
	Found   bool
}

// Summary describes a completed enrichment run.
type Summary struct {
	RunID   uuid.UUID
	Results []Result
	Found   int
	Missed  int
	Elapsed time.Duration
}

// Run looks up a website for every record, in order. It stops early when
// ctx is cancelled, returning the results gathered so far.
func Run(ctx context.Context, finder Finder, records []company.Record) Summary {
	start := time.Now()
	s := Summary{
		RunID:   uuid.New(),
		Results: make([]Result, 0, len(records)),
	}

	logger := logging.WithFields(ctx, "run_id", s.RunID, "records", len(records))
	logger.Info("enrichment started")

	for _, rec := range records {
		if ctx.Err() != nil {
			logger.Warn("enrichment cancelled", "completed", len(s.Results))
			break
		}

		website, found := finder.SearchCompany(ctx, rec.CompanyName)
		if found {
			s.Found++
		} else {
			s.Missed++
			logger.Debug("no website found", "company", rec.CompanyName)
		}
		s.Results = append(s.Results, Result{Record: rec, Website: website, Found: found})
	}

	s.Elapsed = time.Since(start)
	logger.Info("enrichment finished",
		"found", s.Found,
		"missed", s.Missed,
		"elapsed_ms", s.Elapsed.Milliseconds(),
	)
	return s
}

// WriteCSV writes enriched results as CSV: the ten schema columns plus a
// trailing Website column, empty when the lookup found nothing.
func WriteCSV(w io.Writer, results []Result) error {
	records := make([][]string, 0, len(results)+1)
	records = append(records, append(append([]string{}, company.Columns...), "Website"))
	for _, res := range results {
		records = append(records, append(res.Record.Values(), res.Website))
	}
	return csv.Write(w, records)
}
