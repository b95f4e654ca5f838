package errors

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling
const (
	// System errors
	ErrCodeGitNotFound = "GIT_NOT_FOUND"
	ErrCodeNotARepo    = "NOT_A_REPO"

	// Git operation errors
	ErrCodeGitOperation = "GIT_OPERATION"
	ErrCodeWipCommit    = "WIP_COMMIT"

	// Input errors
	ErrCodeInvalidArgs   = "INVALID_ARGS"
	ErrCodeConfigInvalid = "CONFIG_INVALID"
)

// GitfuError represents a standardized error with code and context.
//
// Code is stable for programmatic handling. Message is what the user sees;
// Cause, when set, is appended to it. Context carries extra key/value data
// shown in debug output.
//
//	err := ErrNotARepo("/tmp").WithContext("command", "check")
//	if IsGitfuError(err, ErrCodeNotARepo) {
//	  ...
//	}
type GitfuError struct {
	Code      string
	Message   string
	Cause     error
	Context   map[string]interface{}
	Operation string
}

// Error implements the error interface
func (e *GitfuError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *GitfuError) Unwrap() error {
	return e.Cause
}

// Is matches another *GitfuError with the same code.
func (e *GitfuError) Is(target error) bool {
	if t, ok := target.(*GitfuError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *GitfuError) WithContext(key string, value interface{}) *GitfuError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewGitfuError creates a new standardized error
func NewGitfuError(code, message string, cause error) *GitfuError {
	return &GitfuError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewGitfuErrorf creates a new standardized error with formatted message
func NewGitfuErrorf(code string, cause error, format string, args ...interface{}) *GitfuError {
	return &GitfuError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// System errors
func ErrGitNotFound(cause error) *GitfuError {
	return NewGitfuError(ErrCodeGitNotFound, "git is not available in PATH", cause)
}

func ErrNotARepo(path string) *GitfuError {
	return NewGitfuError(ErrCodeNotARepo, "not a git repository", nil).
		WithContext("path", path)
}

// Git operation errors
func ErrGitOperation(operation string, cause error) *GitfuError {
	return NewGitfuErrorf(ErrCodeGitOperation, cause, "git %s failed", operation).
		WithContext("operation", operation)
}

func ErrWipCommit(subject string) *GitfuError {
	return NewGitfuError(ErrCodeWipCommit, "Last commit was a WIP.", nil).
		WithContext("subject", subject)
}

// Input errors
func ErrInvalidArgs(message string) *GitfuError {
	return NewGitfuError(ErrCodeInvalidArgs, message, nil)
}

func ErrConfigInvalid(cause error) *GitfuError {
	return NewGitfuError(ErrCodeConfigInvalid, "invalid configuration", cause)
}

// IsGitfuError reports whether err's chain holds a GitfuError with the given code.
func IsGitfuError(err error, code string) bool {
	var gitfuErr *GitfuError
	if errors.As(err, &gitfuErr) {
		return gitfuErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of the first GitfuError in err's chain, or "".
func GetErrorCode(err error) string {
	var gitfuErr *GitfuError
	if errors.As(err, &gitfuErr) {
		return gitfuErr.Code
	}
	return ""
}
