package controller

import (
	"encoding/json"
	"net/http"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

// writeJSON encodes body to the response with the given status.
// Encoding failures are logged; the status line is already gone by then.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response body", "error", err)
	}
}

type messageBody struct {
	Message string `json:"message"`
}

// writeMessage writes a JSON error envelope with the given status.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, messageBody{Message: message})
}
