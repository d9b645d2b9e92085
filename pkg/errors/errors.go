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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigNotFound    ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse       ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid     ErrorCode = "CONFIG_INVALID"
	ErrGameNotConfigured ErrorCode = "GAME_NOT_CONFIGURED"

	// Patch layout errors
	ErrTargetMissing      ErrorCode = "TARGET_MISSING"
	ErrPatchSourceMissing ErrorCode = "PATCH_SOURCE_MISSING"

	// Locking errors
	ErrLockHeld ErrorCode = "LOCK_HELD"

	// Conflict errors
	ErrConflictPrompt ErrorCode = "CONFLICT_PROMPT"

	// State errors
	ErrStateLoad ErrorCode = "STATE_LOAD"
	ErrStateSave ErrorCode = "STATE_SAVE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCopy   ErrorCode = "FILE_COPY"

	// Engine errors
	ErrPatchingFailed ErrorCode = "PATCHING_FAILED"
)

// PatcherError represents a structured error with code and details
type PatcherError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PatcherError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PatcherError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PatcherError) Is(target error) bool {
	var targetErr *PatcherError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PatcherError with the given code and message
func New(code ErrorCode, message string) *PatcherError {
	return &PatcherError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PatcherError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PatcherError {
	return &PatcherError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PatcherError
func Wrap(err error, code ErrorCode, message string) *PatcherError {
	if err == nil {
		return nil
	}
	return &PatcherError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PatcherError {
	if err == nil {
		return nil
	}
	return &PatcherError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PatcherError) WithDetail(key string, value interface{}) *PatcherError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var patcherErr *PatcherError
	if errors.As(err, &patcherErr) {
		return patcherErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PatcherError
func GetErrorCode(err error) ErrorCode {
	var patcherErr *PatcherError
	if errors.As(err, &patcherErr) {
		return patcherErr.Code
	}
	return ErrUnknown
}
