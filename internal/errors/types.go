// Package errors defines the structured error taxonomy used across pass-tutor.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
)

// Common error codes.
const (
	ErrCodeEmptyPool     = "ERR_EMPTY_POOL"
	ErrCodeConsoleRead   = "ERR_CONSOLE_READ"
	ErrCodeConsoleWrite  = "ERR_CONSOLE_WRITE"
	ErrCodeConfigInvalid = "ERR_CONFIG_INVALID"
)

// TutorError is a structured error type with context.
type TutorError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Recoverable bool
}

// Error implements the error interface.
func (e *TutorError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *TutorError) Unwrap() error {
	return e.Cause
}

// Is matches another TutorError with the same type and code.
func (e *TutorError) Is(target error) bool {
	var t *TutorError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *TutorError) WithContext(key string, value interface{}) *TutorError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *TutorError {
	return &TutorError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *TutorError {
	return &TutorError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *TutorError {
	return &TutorError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// ErrConsoleRead wraps a failed console read.
func ErrConsoleRead(cause error) *TutorError {
	return NewIOError(ErrCodeConsoleRead, "failed to read line", cause)
}

// ErrConsoleWrite wraps a failed console write.
func ErrConsoleWrite(cause error) *TutorError {
	return NewIOError(ErrCodeConsoleWrite, "failed to write to console", cause)
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var te *TutorError
	if errors.As(err, &te) {
		return te.Recoverable
	}

	return false
}

// IsIOError checks if an error came from console I/O.
func IsIOError(err error) bool {
	var te *TutorError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeIO
	}

	return false
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// ErrorHandler provides centralized error handling.
type ErrorHandler struct {
	logger Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs err once. Recoverable errors are warnings, everything else is
// an error. Cancellation is not an error and is ignored.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil || errors.Is(err, context.Canceled) {
		return
	}

	var te *TutorError
	if !errors.As(err, &te) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	if IsRecoverable(te) {
		h.logger.Warn(ctx, te, "Recoverable error occurred",
			"type", te.Type,
			"code", te.Code)
		return
	}

	h.logger.Error(ctx, te, "Error occurred",
		"type", te.Type,
		"code", te.Code)
}
