// Package httputil provides HTTP handler utilities for consistent JSON
// responses and request parsing across the authorization service.
package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vendascope/vendascope/pkg/contextkeys"
)

// ErrorBody is the JSON error envelope returned by every endpoint.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteErrorMessage writes a JSON error response, attaching the request ID
// when the request-ID middleware ran.
func WriteErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := ErrorBody{Error: message}
	if r != nil {
		body.RequestID = contextkeys.RequestIDFrom(r.Context())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteBadRequest writes a 400 response.
func WriteBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	WriteErrorMessage(w, r, http.StatusBadRequest, message)
}

// WriteUnauthorized writes a 401 response.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	WriteErrorMessage(w, r, http.StatusUnauthorized, message)
}

// WriteForbidden writes a 403 response.
func WriteForbidden(w http.ResponseWriter, r *http.Request, message string) {
	WriteErrorMessage(w, r, http.StatusForbidden, message)
}

// WriteInternalError writes a 500 response.
func WriteInternalError(w http.ResponseWriter, r *http.Request, err error) {
	WriteErrorMessage(w, r, http.StatusInternalServerError, err.Error())
}

// WriteSuccess writes a 200 response with JSON data.
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, data)
}

// ParseJSON decodes JSON from the request body into dest.
func ParseJSON(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// ParseJSONOrError decodes JSON and writes a 400 response on failure.
func ParseJSONOrError(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := ParseJSON(r, dest); err != nil {
		WriteBadRequest(w, r, err.Error())
		return false
	}
	return true
}
