package models

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when a bearer credential is missing or not in
// the allow-list. The message is intentionally generic.
var ErrUnauthorized = errors.New("invalid API key")

// ModelNotFoundError is returned when a request names a model that is not in
// the catalog. The offending id is echoed back to the client.
type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %s not found", e.Model)
}

// APIError is the client-visible error payload, matching the upstream
// vendor's envelope shape.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ErrorResponse wraps an APIError into the {"error": {...}} envelope
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewErrorResponse builds an error envelope
func NewErrorResponse(message, errType, code string) ErrorResponse {
	return ErrorResponse{Error: APIError{
		Message: message,
		Type:    errType,
		Code:    code,
	}}
}
