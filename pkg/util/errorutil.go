package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes rendered in the "code" field of error responses.
const (
	CodeValidation = "VALIDATION_FAILED"
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeConflict   = "CONFLICT"
	CodeTimeout    = "REQUEST_TIMEOUT"
	CodeInternal   = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	CodeValidation: http.StatusBadRequest,
	CodeNotFound:   http.StatusNotFound,
	CodeForbidden:  http.StatusForbidden,
	CodeConflict:   http.StatusConflict,
	CodeTimeout:    http.StatusRequestTimeout,
	CodeInternal:   http.StatusInternalServerError,
}

// DomainError is the one error shape services hand to the HTTP layer.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewDomainError builds an error with an explicit status.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func newCoded(code, message string, details map[string]any, cause error) *DomainError {
	return &DomainError{
		Code:       code,
		Message:    message,
		HTTPStatus: statusByCode[code],
		Details:    details,
		Err:        cause,
	}
}

func NewValidationError(message string, details map[string]any) error {
	return newCoded(CodeValidation, message, details, nil)
}

// NewNotFound reports a missing resource, e.g. NewNotFound("agent", {"id": id}).
func NewNotFound(resource string, details map[string]any) error {
	return newCoded(CodeNotFound, resource+" not found", details, nil)
}

func NewForbidden(message string) error {
	return newCoded(CodeForbidden, message, nil, nil)
}

func NewConflict(message string, details map[string]any) error {
	return newCoded(CodeConflict, message, details, nil)
}

func NewInternalError(cause error) error {
	return newCoded(CodeInternal, "internal server error", nil, cause)
}

// HasCode reports whether err carries a DomainError with the given code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToDomainError unwraps a DomainError or classifies err. Cancelled and
// expired contexts become REQUEST_TIMEOUT; anything else is internal.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	switch {
	case errors.As(err, &domainErr):
		return domainErr
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return newCoded(CodeTimeout, "request cancelled before completion", nil, err)
	default:
		return newCoded(CodeInternal, "internal server error", nil, err)
	}
}
