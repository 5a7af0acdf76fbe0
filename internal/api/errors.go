// internal/api/errors.go
//
// JSON error envelopes shared by every handler.
//
// Context
// -------
// Validation failures answer 422 with a JSON:API-style error document:
// one entry per failed field, each carrying a source pointer into the
// request body.  Everything else uses the plain {"error": …} envelope so
// clients can branch on status code alone.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the body of a 422 validation failure.
type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

// ErrorDetail describes a single failed constraint.
type ErrorDetail struct {
	Status int         `json:"status"`
	Source ErrorSource `json:"source"`
	Title  string      `json:"title"`
	Detail string      `json:"detail"`
}

// ErrorSource points at the offending attribute.
type ErrorSource struct {
	Pointer string `json:"pointer"`
}

// writeJSON encodes v with the given status.  The status line is already
// on the wire when encoding starts, so a failure can only be logged; the
// truncated body is left as-is rather than corrupted further.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("encode response body", "err", err)
	}
}

// writeError sends the plain envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationError converts validator failures into the 422 document.
func writeValidationError(w http.ResponseWriter, err error) {
	var resp ErrorResponse
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, ErrorDetail{
				Status: http.StatusUnprocessableEntity,
				Source: ErrorSource{Pointer: "/data/attributes/" + fe.Field()},
				Title:  "Invalid Attribute",
				Detail: fmt.Sprintf("'%s' validation failed for field: '%s'",
					fe.Tag(), fe.Field()),
			})
		}
	} else {
		resp.Errors = append(resp.Errors, ErrorDetail{
			Status: http.StatusUnprocessableEntity,
			Title:  "Invalid Payload",
			Detail: err.Error(),
		})
	}

	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.S().Errorw("encode validation error document", "err", err)
	}
}
