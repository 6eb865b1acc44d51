package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeLoadError     = "LOAD_ERROR"
	CodeRenderError   = "RENDER_ERROR"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// LoadError marks a source table as missing, unreadable, or structurally
// incomplete. It is the only fatal condition in the pipeline.
func LoadError(message string) *AppError {
	return New(CodeLoadError, message)
}

func LoadErrorf(format string, args ...interface{}) *AppError {
	return New(CodeLoadError, fmt.Sprintf(format, args...))
}

func RenderError(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderError,
		Message: message,
		Cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// IsLoadError reports whether err carries the LOAD_ERROR code.
func IsLoadError(err error) bool {
	return GetCode(err) == CodeLoadError
}
