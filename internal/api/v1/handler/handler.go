// Package handler contains the HTTP handlers that translate requests and
// responses to and from the service layer.
package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/apperror"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorDTO{Message: msg})
}

// writeServiceError maps a domain error onto its HTTP status. Anything
// outside the taxonomy is logged and surfaced as a generic 500 so internals
// never leak to clients.
func writeServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	if ae, ok := apperror.As(err); ok {
		writeError(w, ae.Status, ae.Message)
		return
	}
	logger.Error().Err(err).Msg("unhandled service error")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	return json.NewDecoder(r.Body).Decode(dst)
}
