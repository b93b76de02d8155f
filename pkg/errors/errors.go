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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrBackup     ErrorCode = "BACKUP"

	// External command errors
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"
)

// SdcError represents a structured error with code and details
type SdcError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SdcError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SdcError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SdcError) Is(target error) bool {
	var targetErr *SdcError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SdcError with the given code and message
func New(code ErrorCode, message string) *SdcError {
	return &SdcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SdcError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SdcError {
	return &SdcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an SdcError
func Wrap(err error, code ErrorCode, message string) *SdcError {
	if err == nil {
		return nil
	}
	return &SdcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SdcError {
	if err == nil {
		return nil
	}
	return &SdcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SdcError) WithDetail(key string, value interface{}) *SdcError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SdcError) WithDetails(details map[string]interface{}) *SdcError {
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
	var sdcErr *SdcError
	if errors.As(err, &sdcErr) {
		return sdcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an SdcError
func GetErrorCode(err error) ErrorCode {
	var sdcErr *SdcError
	if errors.As(err, &sdcErr) {
		return sdcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an SdcError
func GetErrorDetails(err error) map[string]interface{} {
	var sdcErr *SdcError
	if errors.As(err, &sdcErr) {
		return sdcErr.Details
	}
	return nil
}

// IsValidation reports whether err rejects the caller's input.
func IsValidation(err error) bool {
	return IsErrorCode(err, ErrInvalidInput)
}

// IsNotFound reports whether err signals a missing property key.
func IsNotFound(err error) bool {
	return IsErrorCode(err, ErrNotFound)
}

// IsIO reports whether err comes from reading, writing or backing up a file.
func IsIO(err error) bool {
	switch GetErrorCode(err) {
	case ErrFileAccess, ErrFileWrite, ErrBackup:
		return true
	}
	return false
}

// IsExecution reports whether err comes from an external command whose
// output could not be classified.
func IsExecution(err error) bool {
	return IsErrorCode(err, ErrActionExecute)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
