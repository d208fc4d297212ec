// Command intake validates, cleans, and optionally enriches a company
// CSV file from the command line.
//
// Usage:
//
//	intake -in companies.csv -check
//	intake -in companies.csv -out cleaned.csv
//	intake -in companies.csv -out cleaned.csv -enrich -enriched-out enriched.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/intake/internal/config"
	"github.com/JonMunkholm/intake/internal/dataset"
	"github.com/JonMunkholm/intake/internal/enrich"
	"github.com/JonMunkholm/intake/internal/logging"
	"github.com/JonMunkholm/intake/internal/pipeline"
	"github.com/JonMunkholm/intake/internal/report"
	"github.com/JonMunkholm/intake/internal/search"
	"github.com/joho/godotenv"
)

func main() {
	var (
		inPath      = flag.String("in", "", "source CSV file (required)")
		outPath     = flag.String("out", "", "write the cleaned CSV here")
		checkOnly   = flag.Bool("check", false, "validate and report only, write nothing")
		doEnrich    = flag.Bool("enrich", false, "look up a website for each company")
		enrichedOut = flag.String("enriched-out", "", "write the enriched CSV here (requires -enrich)")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "intake: -in <path> is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := run(cfg, *inPath, *outPath, *checkOnly, *doEnrich, *enrichedOut); err != nil {
		slog.Error("intake failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, inPath, outPath string, checkOnly, doEnrich bool, enrichedOut string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	proc := pipeline.New(inPath)

	summary := report.NewTable("Intake Summary").Add("Source", inPath)

	if checkOnly {
		if err := proc.ValidateSource(); err != nil {
			return err
		}
		table, err := readRaw(inPath)
		if err != nil {
			return err
		}

		r := pipeline.Analyze(table)
		summary.AddInt("Rows", r.RowCount).
			AddInt("Columns", len(r.Columns)).
			AddInt("Missing columns", len(r.MissingColumns)).
			AddInt("Invalid ZIPs", r.InvalidZips).
			Add("Valid", fmt.Sprintf("%v", r.Valid))
		for _, nc := range r.NullCounts {
			summary.AddInt("Nulls in "+nc.Field, nc.Count)
		}
		return summary.Render(os.Stdout)
	}

	cleaned, err := proc.Load()
	if err != nil {
		return err
	}
	summary.AddInt("Rows", len(cleaned.Rows)).AddInt("Columns", len(cleaned.Columns))

	if outPath != "" {
		if err := proc.Save(outPath); err != nil {
			return err
		}
		summary.Add("Cleaned output", outPath)
	}

	if doEnrich {
		records, err := proc.Records()
		if err != nil {
			return err
		}

		searcher := search.New(cfg.Search.APIKey, search.WithTimeout(cfg.Search.Timeout))
		s := enrich.Run(ctx, searcher, records)
		summary.AddInt("Websites found", s.Found).AddInt("Websites missed", s.Missed)

		if enrichedOut != "" {
			f, err := os.Create(enrichedOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", enrichedOut, err)
			}
			if err := enrich.WriteCSV(f, s.Results); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", enrichedOut, err)
			}
			summary.Add("Enriched output", enrichedOut)
		}
	}

	return summary.Render(os.Stdout)
}

// readRaw loads the source as-is for check mode, without validation.
func readRaw(path string) (*dataset.Table, error) {
	return dataset.ReadFile(path)
}
