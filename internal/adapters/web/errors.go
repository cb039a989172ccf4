package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
	Available *int   `json:"available,omitempty"` // set on insufficient-stock rejections
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeDomainError maps the typed rejection errors onto HTTP statuses.
// Anything unrecognized is treated as an internal failure.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *core.InvalidRequestError
	if errors.As(err, &invalid) {
		writeError(w, r, invalid.Error(), "INVALID_REQUEST", http.StatusBadRequest)
		return
	}

	var insufficient *core.InsufficientStockError
	if errors.As(err, &insufficient) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		available := insufficient.Available
		_ = json.NewEncoder(w).Encode(errorResponse{
			Error:     insufficient.Error(),
			Code:      "INSUFFICIENT_STOCK",
			RequestID: requestIDFromContext(r.Context()),
			Available: &available,
		})
		return
	}

	var unknownKind *core.UnknownTransferKindError
	if errors.As(err, &unknownKind) {
		writeError(w, r, unknownKind.Error(), "UNKNOWN_TRANSFER_KIND", http.StatusBadRequest)
		return
	}

	writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
