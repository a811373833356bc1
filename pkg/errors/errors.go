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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Mapping errors
	ErrMappingOpen  ErrorCode = "MAPPING_OPEN"
	ErrMappingParse ErrorCode = "MAPPING_PARSE"
	ErrRowMalformed ErrorCode = "ROW_MALFORMED"

	// Rename errors
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrRename         ErrorCode = "RENAME"
)

// CsvmvError represents a structured error with code and details
type CsvmvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CsvmvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CsvmvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CsvmvError) Is(target error) bool {
	var targetErr *CsvmvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *CsvmvError {
	return &CsvmvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates a CsvmvError with the given code and message
func New(code ErrorCode, message string) *CsvmvError {
	return newError(code, message, nil)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CsvmvError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *CsvmvError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CsvmvError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail adds a detail to the error
func (e *CsvmvError) WithDetail(key string, value interface{}) *CsvmvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether the outermost CsvmvError in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	e := find(err)
	return e != nil && e.Code == code
}

// GetErrorCode returns the code of the outermost CsvmvError in err's chain,
// or ErrUnknown if there is none
func GetErrorCode(err error) ErrorCode {
	if e := find(err); e != nil {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost CsvmvError in err's
// chain, or nil if there is none
func GetErrorDetails(err error) map[string]interface{} {
	if e := find(err); e != nil {
		return e.Details
	}
	return nil
}

func find(err error) *CsvmvError {
	var e *CsvmvError
	if errors.As(err, &e) {
		return e
	}
	return nil
}
