package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/JonMunkholm/intake/internal/company"
	"github.com/JonMunkholm/intake/internal/csv"
	"github.com/JonMunkholm/intake/internal/dataset"
	"github.com/JonMunkholm/intake/internal/logging"
	"github.com/JonMunkholm/intake/internal/pipeline"
)

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// schemaColumn describes one schema column for the API.
type schemaColumn struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// handleSchema returns the expected columns and which must be populated.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	required := make(map[string]bool, len(company.RequiredFields))
	for _, f := range company.RequiredFields {
		required[f] = true
	}

	columns := make([]schemaColumn, len(company.Columns))
	for i, col := range company.Columns {
		columns[i] = schemaColumn{Name: col, Required: required[col]}
	}
	writeJSON(w, map[string]any{"columns": columns})
}

// handleTemplate serves a downloadable CSV template: the header row plus
// one example row.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="company-template.csv"`)

	if err := csv.Write(w, company.TemplateRows()); err != nil {
		logging.FromContext(r.Context()).Error("writing template", "error", err)
	}
}

// handleValidate parses a table from the request and returns the full
// diagnostic report. The response is 200 whether the table is valid or
// not; the report carries the verdict.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	table, err := s.tableFromRequest(w, r)
	if err != nil {
		respondError(w, r, err, errorStatus(err))
		return
	}

	report := pipeline.Analyze(table)
	logging.FromContext(r.Context()).Info("validation report",
		"rows", report.RowCount,
		"valid", report.Valid,
	)
	writeJSON(w, report)
}

// handleClean validates and cleans a table from the request, returning
// the cleaned CSV as an attachment. Validation failures map to error
// JSON with the full problem list.
func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	table, err := s.tableFromRequest(w, r)
	if err != nil {
		respondError(w, r, err, errorStatus(err))
		return
	}

	if err := pipeline.ValidateSchema(table); err != nil {
		respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}
	if err := pipeline.ValidateContent(table); err != nil {
		respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	cleaned := pipeline.Clean(table)
	logging.FromContext(r.Context()).Info("cleaned table", "rows", len(cleaned.Rows))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="companies-cleaned.csv"`)
	if err := cleaned.Write(w); err != nil {
		logging.FromContext(r.Context()).Error("writing cleaned csv", "error", err)
	}
}

// websiteResponse is the JSON shape for website lookups.
type websiteResponse struct {
	Company string `json:"company"`
	Website string `json:"website,omitempty"`
	Found   bool   `json:"found"`
}

// handleWebsite looks up a company website. An absent search result is a
// 200 with found=false; absence is not an error.
func (s *Server) handleWebsite(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("company"))
	if name == "" {
		respondError(w, r, fmt.Errorf("%w: missing company parameter", errBadRequest), http.StatusBadRequest)
		return
	}

	website, found := s.finder.SearchCompany(r.Context(), name)
	logging.FromContext(r.Context()).Info("website lookup", "company", name, "found", found)
	writeJSON(w, websiteResponse{Company: name, Website: website, Found: found})
}

// tableFromRequest parses a CSV table from a multipart "file" part or the
// raw request body, capped at the configured upload size.
func (s *Server) tableFromRequest(w http.ResponseWriter, r *http.Request) (*dataset.Table, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("%w: no file provided", errBadRequest)
		}
		defer file.Close()
		src = file
	}

	table, err := dataset.Read(src)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		if errors.Is(err, dataset.ErrEmpty) {
			return nil, err
		}
		return nil, &parseError{err: err}
	}
	return table, nil
}

// errorStatus picks the HTTP status for a request-parsing failure.
func errorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
