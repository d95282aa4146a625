// Package errors provides application-level error types shared by the
// trackers, the store and the host adapters.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies how the caller is expected to react.
type ErrorType string

const (
	// ErrorTypeStoreUnavailable is fatal at startup: the data directory or
	// the database cannot be created, opened or migrated.
	ErrorTypeStoreUnavailable ErrorType = "store_unavailable"
	// ErrorTypeWriteFailed is recoverable: a single insert failed and the
	// record is dropped.
	ErrorTypeWriteFailed ErrorType = "write_failed"
	// ErrorTypeHostUnavailable means a platform query could not be served
	// this tick.
	ErrorTypeHostUnavailable ErrorType = "host_unavailable"
	ErrorTypeValidation      ErrorType = "validation_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType
	Message string
	Details string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(t ErrorType, message string, err error, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Details: detail, Err: err}
}

// NewStoreUnavailableError wraps a startup failure of the local store.
func NewStoreUnavailableError(message string, err error, details ...string) *AppError {
	return newAppError(ErrorTypeStoreUnavailable, message, err, details)
}

// NewWriteFailedError wraps a failed insert.
func NewWriteFailedError(message string, err error, details ...string) *AppError {
	return newAppError(ErrorTypeWriteFailed, message, err, details)
}

func NewHostUnavailableError(message string, err error, details ...string) *AppError {
	return newAppError(ErrorTypeHostUnavailable, message, err, details)
}

func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, nil, details)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsStoreUnavailable reports whether err must terminate the process.
func IsStoreUnavailable(err error) bool {
	return isType(err, ErrorTypeStoreUnavailable)
}

func IsWriteFailed(err error) bool {
	return isType(err, ErrorTypeWriteFailed)
}

func IsHostUnavailable(err error) bool {
	return isType(err, ErrorTypeHostUnavailable)
}

func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}
