package company

import (
	"testing"

	"github.com/JonMunkholm/intake/internal/dataset"
)

func fullRow() dataset.Row {
	return dataset.Row{
		ColCompanyName:        dataset.NewCell("Acme Corp"),
		ColParentCompanyName:  dataset.NewCell("Acme Holdings"),
		ColExecutiveFirstName: dataset.NewCell("Jane"),
		ColExecutiveLastName:  dataset.NewCell("Doe"),
		ColAddress:            dataset.NewCell("100 Market St"),
		ColCity:               dataset.NewCell("San Francisco"),
		ColState:              dataset.NewCell("CA"),
		ColZIPCode:            dataset.NewCell("94105"),
		ColLegalName:          dataset.NewCell("Acme Corp Inc."),
		ColRecordType:         dataset.NewCell("Headquarters"),
	}
}

func TestFromRow(t *testing.T) {
	t.Run("all fields populated", func(t *testing.T) {
		rec, err := FromRow(fullRow())
		if err != nil {
			t.Fatalf("FromRow() error = %v", err)
		}
		if rec.CompanyName != "Acme Corp" {
			t.Errorf("CompanyName = %q, want %q", rec.CompanyName, "Acme Corp")
		}
		if rec.ParentCompanyName == nil || *rec.ParentCompanyName != "Acme Holdings" {
			t.Errorf("ParentCompanyName = %v, want %q", rec.ParentCompanyName, "Acme Holdings")
		}
		if rec.ZIPCode != "94105" {
			t.Errorf("ZIPCode = %q, want %q", rec.ZIPCode, "94105")
		}
	})

	t.Run("null optional fields become nil", func(t *testing.T) {
		row := fullRow()
		row[ColParentCompanyName] = dataset.Cell{}
		row[ColLegalName] = dataset.Cell{}

		rec, err := FromRow(row)
		if err != nil {
			t.Fatalf("FromRow() error = %v", err)
		}
		if rec.ParentCompanyName != nil {
			t.Errorf("ParentCompanyName = %q, want nil", *rec.ParentCompanyName)
		}
		if rec.LegalName != nil {
			t.Errorf("LegalName = %q, want nil", *rec.LegalName)
		}
	})

	t.Run("null required field fails", func(t *testing.T) {
		row := fullRow()
		row[ColCity] = dataset.Cell{}

		if _, err := FromRow(row); err == nil {
			t.Fatal("FromRow() with null City succeeded, want error")
		}
	})

	t.Run("missing key fails", func(t *testing.T) {
		row := fullRow()
		delete(row, ColCompanyName)

		if _, err := FromRow(row); err == nil {
			t.Fatal("FromRow() with missing Company Name succeeded, want error")
		}
	})
}

func TestValues(t *testing.T) {
	rec, err := FromRow(fullRow())
	if err != nil {
		t.Fatalf("FromRow() error = %v", err)
	}

	vals := rec.Values()
	if len(vals) != len(Columns) {
		t.Fatalf("Values() returned %d fields, want %d", len(vals), len(Columns))
	}
	if vals[0] != "Acme Corp" || vals[7] != "94105" {
		t.Errorf("Values() order wrong: %v", vals)
	}

	rec.LegalName = nil
	if got := rec.Values()[8]; got != "" {
		t.Errorf("nil LegalName Values()[8] = %q, want empty", got)
	}
}

func TestTemplateRows(t *testing.T) {
	rows := TemplateRows()
	if len(rows) != 2 {
		t.Fatalf("TemplateRows() returned %d rows, want 2", len(rows))
	}
	if len(rows[0]) != len(Columns) || len(rows[1]) != len(Columns) {
		t.Errorf("template row widths = %d/%d, want %d", len(rows[0]), len(rows[1]), len(Columns))
	}
	if rows[0][0] != ColCompanyName {
		t.Errorf("template header[0] = %q, want %q", rows[0][0], ColCompanyName)
	}
}
