package errors

import (
	"errors"
	"fmt"
	"io/fs"
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
	ErrPermission    ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Backend errors
	ErrSignatureMismatch ErrorCode = "SIGNATURE_MISMATCH"
	ErrBackendProbe      ErrorCode = "BACKEND_PROBE"
	ErrBackendCompute    ErrorCode = "BACKEND_COMPUTE"

	// Template errors
	ErrBackup         ErrorCode = "BACKUP_FAILED"
	ErrTemplateCopy   ErrorCode = "TEMPLATE_COPY"
	ErrTemplateRemove ErrorCode = "TEMPLATE_REMOVE"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkSwap   ErrorCode = "SYMLINK_SWAP"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// WpgError represents a structured error with code and details
type WpgError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WpgError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WpgError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WpgError) Is(target error) bool {
	var targetErr *WpgError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WpgError with the given code and message
func New(code ErrorCode, message string) *WpgError {
	return &WpgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WpgError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WpgError {
	return &WpgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WpgError
func Wrap(err error, code ErrorCode, message string) *WpgError {
	if err == nil {
		return nil
	}
	return &WpgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WpgError {
	if err == nil {
		return nil
	}
	return &WpgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WpgError) WithDetail(key string, value interface{}) *WpgError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wpgErr *WpgError
	if errors.As(err, &wpgErr) {
		if wpgErr.Code == code {
			return true
		}
		return IsErrorCode(wpgErr.Wrapped, code)
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WpgError
func GetErrorCode(err error) ErrorCode {
	var wpgErr *WpgError
	if errors.As(err, &wpgErr) {
		return wpgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WpgError
func GetErrorDetails(err error) map[string]interface{} {
	var wpgErr *WpgError
	if errors.As(err, &wpgErr) {
		return wpgErr.Details
	}
	return nil
}

// Kind is the coarse failure category callers and tests assert on.
type Kind int

const (
	// KindNone means there was no error
	KindNone Kind = iota
	// KindNotFound means the path or entity does not exist
	KindNotFound
	// KindPermissionDenied means the OS refused access
	KindPermissionDenied
	// KindOther covers every remaining failure
	KindOther
)

// String returns the kind name used in logs and reports
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not-found"
	case KindPermissionDenied:
		return "permission-denied"
	default:
		return "other"
	}
}

// KindOf classifies err. OS errors anywhere in the chain win over codes.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case IsErrorCode(err, ErrNotFound):
		return KindNotFound
	case IsErrorCode(err, ErrPermission):
		return KindPermissionDenied
	default:
		return KindOther
	}
}
