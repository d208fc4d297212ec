package web

// errors.go maps technical errors to user-facing responses.
//
// Every error is logged with full detail and the request ID server-side;
// clients get a stable code, a plain message, and an action suggestion.
// Validation messages keep their full enumeration (all missing columns,
// all null counts) since the caller needs the complete list to fix the
// file in one pass.

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JonMunkholm/intake/internal/dataset"
	"github.com/JonMunkholm/intake/internal/pipeline"
	"github.com/go-chi/chi/v5/middleware"
)

// errRateLimited marks throttled requests for the error mapper.
var errRateLimited = errors.New("rate limit exceeded")

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// MapError converts a technical error to a user-facing message with a
// stable code. Unrecognized errors fall back to ERR000; the technical
// detail for those lives only in the server log.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var schemaErr *pipeline.SchemaError
	var contentErr *pipeline.ContentError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, pipeline.ErrSourceNotFound):
		return UserMessage{
			Message: "Source file not found",
			Action:  "Check the file path and try again",
			Code:    "FILE001",
		}
	case errors.Is(err, pipeline.ErrSourceFormat):
		return UserMessage{
			Message: "File must be a CSV",
			Action:  "Save the file with a .csv extension and re-upload",
			Code:    "FILE002",
		}
	case errors.Is(err, dataset.ErrEmpty):
		return UserMessage{
			Message: "The file is empty",
			Action:  "Upload a CSV file with a header row and data rows",
			Code:    "FILE003",
		}
	case errors.As(err, &schemaErr):
		return UserMessage{
			Message: "Missing required columns: " + strings.Join(schemaErr.Missing, ", "),
			Action:  "Check that all required columns are present in your file",
			Code:    "VAL001",
		}
	case errors.As(err, &contentErr):
		return UserMessage{
			Message: capitalizeError(contentErr),
			Action:  "Fill in the empty required fields and re-upload",
			Code:    "VAL002",
		}
	case errors.Is(err, pipeline.ErrNoData):
		return UserMessage{
			Message: "No data has been loaded",
			Action:  "Load and validate a file first",
			Code:    "VAL003",
		}
	case errors.As(err, &tooLarge):
		return UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Split the file into smaller chunks",
			Code:    "REQ001",
		}
	case errors.Is(err, errRateLimited):
		return UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		}
	case errors.Is(err, errBadRequest):
		return UserMessage{
			Message: "The request could not be read",
			Action:  "Check the request body and parameters",
			Code:    "REQ001",
		}
	}

	// CSV parse failures come wrapped from the reader.
	var parseErr *parseError
	if errors.As(err, &parseErr) {
		return UserMessage{
			Message: "The file could not be parsed as CSV",
			Action:  "Ensure the file is comma-separated UTF-8 text",
			Code:    "FILE003",
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}

// errBadRequest marks malformed requests (missing parameters, unreadable
// bodies) for the error mapper.
var errBadRequest = errors.New("bad request")

// parseError wraps a CSV read failure so the mapper can recognize it.
type parseError struct {
	err error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("reading csv body: %v", e.err)
}

func (e *parseError) Unwrap() error {
	return e.err
}

// respondError logs the technical error with request context and writes
// the mapped JSON response.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// writeJSON encodes v as JSON. Encoding errors are logged since headers
// are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// capitalizeError upper-cases the first letter of an error message for
// user display.
func capitalizeError(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
