// Package company defines the company record schema: the ten source
// columns, the subset that must be populated, and the typed record the
// pipeline produces from a cleaned row.
package company

import (
	"fmt"

	"github.com/JonMunkholm/intake/internal/dataset"
)

// Source column headers. These must match the CSV header cells exactly
// (after header cleaning).
const (
	ColCompanyName        = "Company Name"
	ColParentCompanyName  = "Parent Company Name"
	ColExecutiveFirstName = "Executive First Name"
	ColExecutiveLastName  = "Executive Last Name"
	ColAddress            = "Address"
	ColCity               = "City"
	ColState              = "State"
	ColZIPCode            = "ZIP Code"
	ColLegalName          = "Legal Name"
	ColRecordType         = "Record Type"
)

// Columns is the full schema in canonical order. Input files may carry
// these in any order; cleaned output always uses this order.
var Columns = []string{
	ColCompanyName,
	ColParentCompanyName,
	ColExecutiveFirstName,
	ColExecutiveLastName,
	ColAddress,
	ColCity,
	ColState,
	ColZIPCode,
	ColLegalName,
	ColRecordType,
}

// RequiredFields are the columns that must be non-null in every row for
// content validation to pass.
var RequiredFields = []string{
	ColCompanyName,
	ColAddress,
	ColCity,
	ColState,
	ColZIPCode,
}

// Record is a single validated company. Optional fields are nil when the
// source cell was null.
type Record struct {
	CompanyName        string
	ParentCompanyName  *string
	ExecutiveFirstName *string
	ExecutiveLastName  *string
	Address            string
	City               string
	State              string
	ZIPCode            string
	LegalName          *string
	RecordType         string
}

// FromRow converts a cleaned table row into a Record. It fails if any
// field the Record types as plain string is null or missing; optional
// fields map null to nil.
func FromRow(row dataset.Row) (Record, error) {
	rec := Record{
		ParentCompanyName:  optional(row, ColParentCompanyName),
		ExecutiveFirstName: optional(row, ColExecutiveFirstName),
		ExecutiveLastName:  optional(row, ColExecutiveLastName),
		LegalName:          optional(row, ColLegalName),
	}

	for _, f := range []struct {
		col string
		dst *string
	}{
		{ColCompanyName, &rec.CompanyName},
		{ColAddress, &rec.Address},
		{ColCity, &rec.City},
		{ColState, &rec.State},
		{ColZIPCode, &rec.ZIPCode},
		{ColRecordType, &rec.RecordType},
	} {
		cell, ok := row[f.col]
		if !ok || !cell.Valid {
			return Record{}, fmt.Errorf("required field %q is empty", f.col)
		}
		*f.dst = cell.String
	}

	return rec, nil
}

func optional(row dataset.Row, col string) *string {
	if cell, ok := row[col]; ok && cell.Valid {
		s := cell.String
		return &s
	}
	return nil
}

// Values returns the record's fields in canonical column order. Nil
// optional fields become empty strings, matching the CSV write side.
func (r Record) Values() []string {
	return []string{
		r.CompanyName,
		deref(r.ParentCompanyName),
		deref(r.ExecutiveFirstName),
		deref(r.ExecutiveLastName),
		r.Address,
		r.City,
		r.State,
		r.ZIPCode,
		deref(r.LegalName),
		r.RecordType,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TemplateRows returns the header plus one example row, used for the
// downloadable CSV template.
func TemplateRows() [][]string {
	header := make([]string, len(Columns))
	copy(header, Columns)
	return [][]string{
		header,
		{
			"Acme Corporation",
			"Acme Holdings",
			"Jane",
			"Doe",
			"100 Market St",
			"San Francisco",
			"CA",
			"94105",
			"Acme Corporation Inc.",
			"Headquarters",
		},
	}
}
