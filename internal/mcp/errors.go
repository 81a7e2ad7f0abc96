package mcp

import (
	"errors"
	"fmt"

	"github.com/radcabna/cosplanner/internal/domain/project"
	"github.com/radcabna/cosplanner/internal/repository"
)

// APIError represents a tool error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// invalidInput builds a caller-level validation failure.
func invalidInput(format string, args ...any) *APIError {
	return &APIError{Code: "invalid_input", Message: fmt.Sprintf(format, args...)}
}

// mapError maps domain errors to tool error codes.
func mapError(err error) *APIError {
	switch {
	case errors.Is(err, project.ErrProjectNotFound), errors.Is(err, repository.ErrNotFound):
		return &APIError{Code: "not_found", Message: err.Error()}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, repository.ErrInvalidInput):
		return &APIError{Code: "invalid_input", Message: err.Error()}
	default:
		return &APIError{Code: "internal", Message: err.Error()}
	}
}
