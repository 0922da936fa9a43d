// Package errors defines the structured error type used by npmpath.
// Every error carries a stable code so callers and tests can branch on it
// without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Composition errors
	ErrWorkingDir   ErrorCode = "WORKING_DIR"
	ErrExecutable   ErrorCode = "EXECUTABLE"
	ErrRootNotFound ErrorCode = "ROOT_NOT_FOUND"
	ErrEnvWrite     ErrorCode = "ENV_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Command errors
	ErrCommandExec ErrorCode = "COMMAND_EXEC"
)

// NpmPathError represents a structured error with code and details
type NpmPathError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NpmPathError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NpmPathError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NpmPathError) Is(target error) bool {
	var targetErr *NpmPathError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NpmPathError with the given code and message
func New(code ErrorCode, message string) *NpmPathError {
	return &NpmPathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NpmPathError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NpmPathError {
	return &NpmPathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an NpmPathError
func Wrap(err error, code ErrorCode, message string) *NpmPathError {
	if err == nil {
		return nil
	}
	return &NpmPathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NpmPathError {
	if err == nil {
		return nil
	}
	return &NpmPathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NpmPathError) WithDetail(key string, value interface{}) *NpmPathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *NpmPathError) WithDetails(details map[string]interface{}) *NpmPathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var npmErr *NpmPathError
	if errors.As(err, &npmErr) {
		return npmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an NpmPathError
func GetErrorCode(err error) ErrorCode {
	var npmErr *NpmPathError
	if errors.As(err, &npmErr) {
		return npmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an NpmPathError
func GetErrorDetails(err error) map[string]interface{} {
	var npmErr *NpmPathError
	if errors.As(err, &npmErr) {
		return npmErr.Details
	}
	return nil
}
// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
