package server

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"code"`
	Message    string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer.
func (e *APIError) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

func newAPIError(status int, code, msg string) *APIError {
	return &APIError{StatusCode: status, ErrorCode: code, Message: msg}
}

// Error codes returned in the "code" field.
const (
	codeInvalidRequest   = "INVALID_REQUEST"
	codeValidationFailed = "VALIDATION_FAILED"
	codeTooLarge         = "PAYLOAD_TOO_LARGE"
	codeUnavailable      = "UNAVAILABLE"
)
