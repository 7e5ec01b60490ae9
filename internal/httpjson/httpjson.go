package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// Error writes a structured error body with the given status code.
func Error(w http.ResponseWriter, status int, detail string) {
	Write(w, status, ErrorResponse{Detail: detail})
}

// Decode reads the request body into v and reports a 400 on failure.
// Returns false if decoding failed and a response has been written.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
