package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/services"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps a service failure to the wire: field-keyed
// validation errors become 400 with the field map as the body, not-found
// (which deliberately covers not-owned) becomes 404, and everything else is a
// generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if verrs, ok := validation.AsErrors(err); ok {
		writeJSON(w, http.StatusBadRequest, verrs)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	logger.Log.Errorw("internal server error", "err", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
