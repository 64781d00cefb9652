package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeDatabase indicates the lookup store could not satisfy a request
	ErrorTypeDatabase ErrorType = "DATABASE"

	// ErrorTypeIneligible indicates a well-formed request that is refused for a business reason
	ErrorTypeIneligible ErrorType = "INELIGIBLE"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	// Reason is set for ErrorTypeIneligible only.
	Reason string
	Err    error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s(%s): %s", e.Type, e.Reason, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// NewDatabaseError creates a data-access error. The message is diagnostic only.
func NewDatabaseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: message,
		Err:     err,
	}
}

// NewIneligibleError creates an eligibility refusal carrying a reason code
func NewIneligibleError(reason, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeIneligible,
		Message: message,
		Reason:  reason,
	}
}

// As returns the first AppError in err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == t
}
