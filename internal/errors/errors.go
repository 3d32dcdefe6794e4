// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized is returned when an operation requires an authenticated user and none is present.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden is returned when the authenticated user lacks the required privileges.
	ErrForbidden = errors.New("forbidden")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned when client input fails validation. Nothing is persisted when it occurs.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// InvalidParamError is returned when a query or path parameter is malformed.
type InvalidParamError struct {
	Param  string
	Reason string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid %q parameter: %s", e.Param, e.Reason)
}
