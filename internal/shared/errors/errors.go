package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types for different domains
type ErrorType string

const (
	ErrorTypeDomain         ErrorType = "DOMAIN_ERROR"
	ErrorTypeValidation     ErrorType = "VALIDATION_ERROR"
	ErrorTypeInfrastructure ErrorType = "INFRASTRUCTURE_ERROR"
	ErrorTypeNotFound       ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeInternal       ErrorType = "INTERNAL_ERROR"
)

// Common application errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")
	ErrInvalidInput   = errors.New("invalid input")
)

// Fixture-specific errors
var (
	ErrFixtureNotFound       = errors.New("fixture not found")
	ErrCatalogScan           = errors.New("fixture catalog scan failed")
	ErrInvalidDefinition     = errors.New("invalid fixture definition")
	ErrInvalidDatabaseName   = errors.New("invalid database name")
	ErrInvalidCollectionName = errors.New("invalid collection name")
)

// AppError represents a custom application error with context
type AppError struct {
	Type      ErrorType              `json:"type"`
	Message   string                 `json:"message"`
	Code      string                 `json:"code,omitempty"`
	HTTPCode  int                    `json:"-"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     error                  `json:"-"`
	Component string                 `json:"component,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(errorType ErrorType, message string, httpCode int) *AppError {
	return &AppError{
		Type:     errorType,
		Message:  message,
		HTTPCode: httpCode,
		Details:  make(map[string]interface{}),
	}
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithCause adds the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithComponent adds the component name
func (e *AppError) WithComponent(component string) *AppError {
	e.Component = component
	return e
}

// WithDetail adds a detail field
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Common error constructors

// NewDomainError creates a domain-specific error
func NewDomainError(message string) *AppError {
	return NewAppError(ErrorTypeDomain, message, http.StatusBadRequest)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrorTypeValidation, message, http.StatusBadRequest)
}

// NewInfrastructureError creates an infrastructure error
func NewInfrastructureError(message string) *AppError {
	return NewAppError(ErrorTypeInfrastructure, message, http.StatusInternalServerError)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrorTypeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	return NewAppError(ErrorTypeInternal, message, http.StatusInternalServerError)
}

// NewMissingParameterError creates a validation error naming the missing query parameter.
// The message is the exact plain-text body returned to HTTP callers.
func NewMissingParameterError(param string) *AppError {
	return NewAppError(ErrorTypeValidation, fmt.Sprintf("missing required query parameter %q", param), http.StatusBadRequest).
		WithCode("missing_parameter").
		WithDetail("parameter", param)
}

// NewFixtureNotFoundError creates an error for a fixture absent from the fixtures root.
// Callers treat this as a client error, so it maps to 400 rather than 404.
func NewFixtureNotFoundError(name string) *AppError {
	return NewAppError(ErrorTypeNotFound, fmt.Sprintf("fixture %q not found", name), http.StatusBadRequest).
		WithCode("fixture_not_found").
		WithCause(ErrFixtureNotFound).
		WithDetail("fixture", name)
}

// NewCatalogScanError creates an error for a failed fixtures root scan. The
// chain carries both ErrCatalogScan and the underlying cause.
func NewCatalogScanError(cause error) *AppError {
	return NewAppError(ErrorTypeInternal, "fixture catalog scan failed", http.StatusInternalServerError).
		WithCode("catalog_scan_failed").
		WithCause(errors.Join(ErrCatalogScan, cause))
}

// Helper functions for common error scenarios

// WrapError wraps an error with context
func WrapError(err error, message string) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrorTypeNotFound
	}
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrFixtureNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrorTypeValidation
	}
	return false
}

// IsFixtureNotFound checks if an error indicates a missing fixture
func IsFixtureNotFound(err error) bool {
	return errors.Is(err, ErrFixtureNotFound)
}

// IsCatalogScan checks if an error originated from a fixtures root scan
func IsCatalogScan(err error) bool {
	return errors.Is(err, ErrCatalogScan)
}

// HTTPStatus returns the HTTP status carried by an AppError, or the fallback
// for plain errors.
func HTTPStatus(err error, fallback int) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.HTTPCode != 0 {
		return appErr.HTTPCode
	}
	return fallback
}
