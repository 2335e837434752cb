package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasklists/domain/tasklist"
	"tasklists/logging"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain errors to status codes. Validation failures are
// 400s, the merged forbidden/not-found outcome is a 404 with a fixed message
// so existence is never leaked, everything else is a 500 with diagnostic
// detail.
func respondError(w http.ResponseWriter, logger *logging.Logger, err error) {
	var validationErr *tasklist.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: validationErr.Message})
	case errors.Is(err, tasklist.ErrForbiddenOrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Message: "Not found."})
	default:
		logger.Error("Unhandled error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "An unexpected error occurred.",
			Details: err.Error(),
		})
	}
}
