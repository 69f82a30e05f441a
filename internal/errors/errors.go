// Package errors provides shared error types for the LowCode API clients.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ValidationError indicates invalid constructor arguments.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// AuthenticationError is returned when the API answers 401 Unauthorized.
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("authentication failed (%d)", e.StatusCode)
}

// NewAuthenticationError creates an AuthenticationError for a 401 response.
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

// RequestError is returned for any other non-2xx response.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d on %s %s: %s", e.StatusCode, e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("API error %d on %s %s", e.StatusCode, e.Method, e.Path)
}

// NewRequestError creates a RequestError.
func NewRequestError(method, path string, statusCode int, message string) *RequestError {
	return &RequestError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NetworkError wraps a transport failure (DNS, connection refused, timeout).
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsAuthentication returns true if the error is an AuthenticationError.
func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return stderrors.As(err, &target)
}

// IsRequest returns true if the error is a RequestError.
func IsRequest(err error) bool {
	var target *RequestError
	return stderrors.As(err, &target)
}

// IsNetwork returns true if the error is a NetworkError.
func IsNetwork(err error) bool {
	var target *NetworkError
	return stderrors.As(err, &target)
}

// StatusCode extracts the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var authErr *AuthenticationError
	if stderrors.As(err, &authErr) {
		return authErr.StatusCode
	}
	var reqErr *RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
