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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Structure building errors. None of these abort a run; the offending
	// entity is dropped and the problem reported.
	ErrInvalidTemplate       ErrorCode = "INVALID_TEMPLATE"
	ErrInvalidCondition      ErrorCode = "INVALID_CONDITION"
	ErrDanglingReference     ErrorCode = "DANGLING_REFERENCE"
	ErrDuplicateSubscription ErrorCode = "DUPLICATE_SUBSCRIPTION"
	ErrEmptySubscription     ErrorCode = "EMPTY_SUBSCRIPTION"

	// Transport errors
	ErrTransport ErrorCode = "TRANSPORT"
	ErrSend      ErrorCode = "SEND"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// NotifyError represents a structured error with code and details
type NotifyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NotifyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NotifyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. Two NotifyErrors are the same when
// their codes are.
func (e *NotifyError) Is(target error) bool {
	var targetErr *NotifyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NotifyError with the given code and message
func New(code ErrorCode, message string) *NotifyError {
	return &NotifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NotifyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NotifyError {
	return &NotifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NotifyError
func Wrap(err error, code ErrorCode, message string) *NotifyError {
	if err == nil {
		return nil
	}
	return &NotifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NotifyError {
	if err == nil {
		return nil
	}
	return &NotifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NotifyError) WithDetail(key string, value interface{}) *NotifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *NotifyError) WithDetails(details map[string]interface{}) *NotifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode reports whether any NotifyError in err's tree, including
// every branch of a joined error, carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &NotifyError{Code: code})
}

// GetErrorCode returns the code of the first NotifyError in err's tree, or
// ErrUnknown if there is none
func GetErrorCode(err error) ErrorCode {
	var notifyErr *NotifyError
	if errors.As(err, &notifyErr) {
		return notifyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NotifyError
func GetErrorDetails(err error) map[string]interface{} {
	var notifyErr *NotifyError
	if errors.As(err, &notifyErr) {
		return notifyErr.Details
	}
	return nil
}

// Join combines several errors into one, skipping nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
