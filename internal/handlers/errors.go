package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crucial707/car-rental/internal/rental"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrMessageInternal is the generic message for 500 responses. Do not expose internal details to clients.
const ErrMessageInternal = "internal server error"

// JSONError sends a JSON error response with a single "error" field.
func JSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// JSONValidationError sends a JSON error response with "error" and optional "fields" for field-level details.
// status is typically http.StatusBadRequest (400).
func JSONValidationError(w http.ResponseWriter, message string, fields map[string]string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	out := map[string]interface{}{"error": message}
	if len(fields) > 0 {
		out["fields"] = fields
	}
	json.NewEncoder(w).Encode(out)
}

// writeServiceError maps a rental error onto a status code and JSON body.
// Unknown errors are logged and reported as 500 without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *rental.ValidationError
	switch {
	case errors.As(err, &verr):
		JSONValidationError(w, "validation failed", verr.Fields, http.StatusBadRequest)
	case errors.Is(err, rental.ErrDuplicateEmail):
		JSONError(w, "Email already exists", http.StatusBadRequest)
	case errors.Is(err, rental.ErrInvalidCredentials):
		JSONError(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, rental.ErrCarNotFound):
		JSONError(w, "Car not found", http.StatusNotFound)
	case errors.Is(err, rental.ErrReferenceNotFound),
		errors.Is(err, rental.ErrInvalidDateRange),
		errors.Is(err, rental.ErrPriceMismatch),
		errors.Is(err, rental.ErrMalformedInput):
		JSONError(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("request failed",
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
	}
}
