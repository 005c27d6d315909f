// Package errors defines the JSON error envelope returned by the inspector
// service.
package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPErrorResponse is the JSON envelope for every error response.
type HTTPErrorResponse struct {
	Error HTTPErrorDetail `json:"error"`
}

// HTTPErrorDetail carries the machine-readable code and human-readable
// message for an error response.
type HTTPErrorDetail struct {
	// Code is a stable machine-readable error code (e.g. "NOT_FOUND").
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// Error codes used by the inspector service.
const (
	// CodeNotFound indicates the route or resource does not exist.
	CodeNotFound = "NOT_FOUND"

	// CodeMethodNotAllowed indicates the method is not supported on this route.
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// CodeBadRequest indicates the request body could not be decoded.
	CodeBadRequest = "BAD_REQUEST"

	// CodeBadPath indicates a raw key or prefix failed to parse.
	CodeBadPath = "BAD_PATH"

	// CodeBadDocument indicates a wire document failed to decode or render.
	CodeBadDocument = "BAD_DOCUMENT"

	// CodeTooManyRequests indicates the client exceeded the rate limit.
	CodeTooManyRequests = "TOO_MANY_REQUESTS"

	// CodeInternal indicates an unexpected internal error.
	CodeInternal = "INTERNAL_ERROR"
)

// WriteJSON writes the error envelope with the given status and code.
func WriteJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := HTTPErrorResponse{
		Error: HTTPErrorDetail{Code: code, Message: message},
	}
	// Encoding a flat struct of strings cannot fail; ignore the error to
	// keep handler call sites simple.
	_ = json.NewEncoder(w).Encode(resp)
}
