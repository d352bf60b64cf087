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
		Code:    "INTERNAL_ERROR",
		Message: message,
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes. The parse/schema/load trio is the Loader's
// failure taxonomy; all three belong to the fatal startup class.
const (
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeParseError     = "PARSE_ERROR"
	CodeSchemaMismatch = "SCHEMA_MISMATCH"
	CodeLoadError      = "LOAD_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// ParseError reports a source file that could not be read or parsed.
// It belongs to the fatal startup class: no partial dashboard is served
// when any of the six sources fails to load.
func ParseError(source string, cause error) *AppError {
	return &AppError{
		Code:    CodeParseError,
		Message: fmt.Sprintf("failed to parse %s", source),
		Cause:   cause,
	}
}

// SchemaMismatch reports a source file missing one of its contract columns.
func SchemaMismatch(source, column string) *AppError {
	return New(CodeSchemaMismatch, fmt.Sprintf("%s is missing required column %s", source, column))
}

// LoadError wraps any failure of the one-time startup load sequence.
func LoadError(cause error) *AppError {
	return &AppError{
		Code:    CodeLoadError,
		Message: "startup data load failed",
		Cause:   cause,
	}
}
