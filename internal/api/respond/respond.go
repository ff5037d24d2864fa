// Package respond centralizes JSON response writing so every handler and
// middleware emits the same failure envelope: {"status": false, "message": ...}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorBody is the uniform failure envelope.
type ErrorBody struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// Error writes the uniform failure envelope with the given status code.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorBody{Status: false, Message: message})
}
