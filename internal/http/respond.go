package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"budget/internal/core"
)

// decodeJSON decodes the request body into dst, writing a 400 response
// on failure. Returns false when the error response has been written.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		s.writeDomainError(w, fmt.Errorf("%w: %v", core.ErrMalformedRequest, err))
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// writeDomainError maps the error taxonomy to a status code and writes
// the JSON error body. Every failure is terminal for its request.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	code, errCode := statusFor(err)
	writeJSON(w, code, map[string]string{"error": errCode, "message": err.Error()})
}

// statusFor maps each taxonomy kind to a distinct HTTP status.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, core.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not_authenticated"
	case errors.Is(err, core.ErrNotAuthorized):
		return http.StatusForbidden, "not_authorized"
	case errors.Is(err, core.ErrMalformedRequest):
		return http.StatusBadRequest, "malformed_request"
	case errors.Is(err, core.ErrMalformedRow):
		return http.StatusBadRequest, "malformed_row"
	case errors.Is(err, core.ErrRemoteUnavailable), errors.Is(err, core.ErrEmptyResult):
		return http.StatusBadGateway, "remote_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
