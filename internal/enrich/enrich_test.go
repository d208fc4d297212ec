package enrich

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/JonMunkholm/intake/internal/company"
	"github.com/google/uuid"
)

// stubFinder maps company names to websites; unknown names are misses.
type stubFinder struct {
	websites map[string]string
	calls    []string
}

func (f *stubFinder) SearchCompany(_ context.Context, name string) (string, bool) {
	f.calls = append(f.calls, name)
	site, ok := f.websites[name]
	return site, ok
}

func record(name string) company.Record {
	return company.Record{
		CompanyName: name,
		Address:     "100 Market St",
		City:        "San Francisco",
		State:       "CA",
		ZIPCode:     "94105",
		RecordType:  "Headquarters",
	}
}

func TestRun(t *testing.T) {
	finder := &stubFinder{websites: map[string]string{
		"Acme Corp": "https://acme.com",
		"Initech":   "https://initech.com",
	}}
	records := []company.Record{record("Acme Corp"), record("Globex Inc"), record("Initech")}

	s := Run(context.Background(), finder, records)

	if len(s.Results) != 3 {
		t.Fatalf("Results = %d, want 3", len(s.Results))
	}
	if s.Found != 2 || s.Missed != 1 {
		t.Errorf("Found/Missed = %d/%d, want 2/1", s.Found, s.Missed)
	}
	if s.RunID == uuid.Nil {
		t.Error("RunID not set")
	}

	// One lookup per record, order preserved.
	wantCalls := []string{"Acme Corp", "Globex Inc", "Initech"}
	for i, want := range wantCalls {
		if finder.calls[i] != want {
			t.Errorf("call[%d] = %q, want %q", i, finder.calls[i], want)
		}
	}

	if !s.Results[0].Found || s.Results[0].Website != "https://acme.com" {
		t.Errorf("result[0] = %+v, want acme.com found", s.Results[0])
	}
	if s.Results[1].Found || s.Results[1].Website != "" {
		t.Errorf("result[1] = %+v, want miss with empty website", s.Results[1])
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	finder := &stubFinder{}
	s := Run(ctx, finder, []company.Record{record("Acme Corp"), record("Globex Inc")})

	if len(finder.calls) != 0 {
		t.Errorf("lookups after cancel = %d, want 0", len(finder.calls))
	}
	if len(s.Results) != 0 {
		t.Errorf("Results = %d, want 0", len(s.Results))
	}
}

func TestRunEmpty(t *testing.T) {
	s := Run(context.Background(), &stubFinder{}, nil)
	if len(s.Results) != 0 || s.Found != 0 || s.Missed != 0 {
		t.Errorf("empty run summary = %+v, want all zero", s)
	}
}

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{Record: record("Acme Corp"), Website: "https://acme.com", Found: true},
		{Record: record("Globex Inc")},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("output rows = %d, want header + 2", len(rows))
	}

	wantWidth := len(company.Columns) + 1
	if len(rows[0]) != wantWidth {
		t.Fatalf("header width = %d, want %d", len(rows[0]), wantWidth)
	}
	if rows[0][wantWidth-1] != "Website" {
		t.Errorf("last header = %q, want %q", rows[0][wantWidth-1], "Website")
	}
	if rows[1][wantWidth-1] != "https://acme.com" {
		t.Errorf("row 1 website = %q, want %q", rows[1][wantWidth-1], "https://acme.com")
	}
	if rows[2][wantWidth-1] != "" {
		t.Errorf("row 2 website = %q, want empty", rows[2][wantWidth-1])
	}
	if rows[1][0] != "Acme Corp" {
		t.Errorf("row 1 company = %q, want %q", rows[1][0], "Acme Corp")
	}
}
