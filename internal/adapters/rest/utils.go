package rest_adapter

import (
	"encoding/json"
	"net/http"

	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

// RespondWithJSON writes the payload as JSON with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := contextkeys.LoggerFromContext(r.Context())
		logger.Error("Failed to encode JSON response", err, port.Fields{
			"path": r.URL.Path,
		})
	}
}

// WriteJSONError writes a plain error body.
func WriteJSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	RespondWithJSON(w, r, statusCode, ErrorResponse{Error: message})
}
