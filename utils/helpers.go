package utils

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/relevanceai/fetch-listings/constants"
)

// ============================================================================
// STANDARDIZED JSON HELPERS
// ============================================================================

// JSONResult represents the result of a JSON operation
type JSONResult struct {
	Data []byte
	Err  error
}

// MarshalJSON marshals data to JSON with error handling
func MarshalJSON(v any) JSONResult {
	data, err := json.Marshal(v)
	return JSONResult{Data: data, Err: err}
}

// MarshalJSONIndent marshals data to pretty JSON with error handling
func MarshalJSONIndent(v any, indent string) JSONResult {
	if indent == "" {
		indent = constants.JSONIndent
	}
	data, err := json.MarshalIndent(v, "", indent)
	return JSONResult{Data: data, Err: err}
}

// ============================================================================
// STANDARDIZED HTTP HELPERS
// ============================================================================

// WriteHTTPJSON writes v as JSON with the given status code.
func WriteHTTPJSON(w http.ResponseWriter, status int, v any) error {
	result := MarshalJSON(v)
	if result.Err != nil {
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + constants.ResponseInternalError + `"}`))
		return result.Err
	}
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(status)
	_, err := w.Write(result.Data)
	return err
}

// RequestID returns the incoming request ID when one was supplied, otherwise a
// fresh UUID.
func RequestID(r *http.Request) string {
	if r != nil {
		if id := strings.TrimSpace(r.Header.Get(constants.HeaderRequestID)); id != "" {
			return id
		}
	}
	return NewRequestID()
}

// NewRequestID returns a fresh request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// ============================================================================
// STRING HELPERS
// ============================================================================

// Truncate shortens s to at most max bytes without splitting a rune and marks
// the cut with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
