// Package errors provides application-level error types and utilities.
// It defines the error taxonomy shared by the lifecycle engine, the use case
// layer and the HTTP interface: validation, forbidden, invalid transition,
// not found and transport errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_failed"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeTransport         ErrorType = "transport_error"
	ErrorTypeInternal          ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped cause, if any
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewValidationError creates a validation error for a specific field.
// The field name is carried in Details so the presentation layer can render
// field-specific messages.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: field,
	}
}

// NewForbiddenError creates a forbidden error for a denied action.
// The action name is carried in Details.
func NewForbiddenError(action string) *AppError {
	return &AppError{
		Type:    ErrorTypeForbidden,
		Message: fmt.Sprintf("not permitted to %s", action),
		Code:    http.StatusForbidden,
		Details: action,
	}
}

// NewInvalidTransitionError creates an error for a status transition that is
// not reachable from the current state.
func NewInvalidTransitionError(from, to string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
		Code:    http.StatusConflict,
		Details: fmt.Sprintf("%s->%s", from, to),
	}
}

// NewNotFoundError creates a not found error for an entity.
func NewNotFoundError(entityType string, id any) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found", entityType),
		Code:    http.StatusNotFound,
		Details: fmt.Sprintf("%s/%v", entityType, id),
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: message,
		Code:    http.StatusUnauthorized,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
		Code:    http.StatusConflict,
	}
}

// NewTransportError wraps a backend/storage failure. The cause is preserved
// for errors.Is/As; the message falls back to a human-readable default when
// the backend supplies none.
func NewTransportError(cause error, message string) *AppError {
	if message == "" {
		message = "upstream request failed"
	}
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Code:    http.StatusBadGateway,
		cause:   cause,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeForbidden
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidTransition
}
