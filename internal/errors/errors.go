package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput    = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON   = errors.New("invalid JSON format")
	ErrRootNotObject = errors.New("root element must be a JSON object, not an array or primitive value")
	ErrMultipleJSON  = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound  = errors.New("file not found")
	ErrFileEmpty     = errors.New("file is empty")
	ErrNoInput       = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrUnknownFormat = errors.New("unknown output format")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConversion ErrorType = "conversion"
	ErrorTypeFormat     ErrorType = "format"
	ErrorTypeOutput     ErrorType = "output"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// AppError is an application-specific error with context. Validation
// errors additionally carry a best-effort 1-based input position.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
	Line    int
	Column  int
}

// Error implements error interface
func (e *AppError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d, column %d)", msg, e.Line, e.Column)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison by error type.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to obtaining input
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a new error related to structural validation
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Err:     err,
	}
}

// NewValidationErrorAt creates a validation error pinned to an input
// position. Line and column are 1-based.
func NewValidationErrorAt(message string, err error, line, column int) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Err:     err,
		Line:    line,
		Column:  column,
	}
}

// NewConversionError creates a new error related to flattening
func NewConversionError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConversion,
		Message: message,
		Err:     err,
	}
}

// NewFormatError creates a new error related to output rendering
func NewFormatError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeFormat,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing output
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeValidation:
			if appErr.Line > 0 {
				return fmt.Sprintf("Validation error: %s (line %d, column %d)", appErr.Message, appErr.Line, appErr.Column)
			}
			return fmt.Sprintf("Validation error: %s", appErr.Message)
		case ErrorTypeConversion:
			return fmt.Sprintf("Conversion error: %s", appErr.Message)
		case ErrorTypeFormat:
			return fmt.Sprintf("Format error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrRootNotObject) {
		return "Error: The root of the document must be a JSON object."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrUnknownFormat) {
		return "Error: Unknown output format. Valid formats are compose, env-file and plain-text."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
