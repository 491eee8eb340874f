package errors

import (
	"errors"
	"fmt"
)

// Exit codes for javart-ctl
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitInvalidWorkDir     = 2
	ExitNoVersionFound     = 3
	ExitNotAnExecutable    = 4
	ExitSpawnFailed        = 5
	ExitVersionQueryFailed = 6
	ExitConfigError        = 7
	ExitCatalogError       = 8
)

// JavartError is the base error type for javart
type JavartError struct {
	Code    int
	Message string
	Path    string
	Cause   error
}

func (e *JavartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *JavartError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a JavartError of the same kind.
// General errors only match themselves.
func (e *JavartError) Is(target error) bool {
	t, ok := target.(*JavartError)
	if !ok {
		return false
	}
	if e.Code == ExitGeneralError {
		return e == t
	}
	return e.Code == t.Code
}

// ExitCode returns the exit code for this error
func (e *JavartError) ExitCode() int {
	return e.Code
}

// Sentinels for errors.Is matching on the detection kinds.
var (
	ErrInvalidWorkDir     = &JavartError{Code: ExitInvalidWorkDir, Message: "invalid working directory"}
	ErrNoVersionFound     = &JavartError{Code: ExitNoVersionFound, Message: "no java version string found"}
	ErrNotAnExecutable    = &JavartError{Code: ExitNotAnExecutable, Message: "not a java executable"}
	ErrSpawnFailed        = &JavartError{Code: ExitSpawnFailed, Message: "failed to start java"}
	ErrVersionQueryFailed = &JavartError{Code: ExitVersionQueryFailed, Message: "failed to get java version"}
)

// New creates a new JavartError
func New(code int, message string) *JavartError {
	return &JavartError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a JavartError
func Wrap(code int, message string, cause error) *JavartError {
	return &JavartError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Detection error constructors

// InvalidWorkDir returns an error for an unreadable current directory
func InvalidWorkDir(cause error) *JavartError {
	return Wrap(ExitInvalidWorkDir, "invalid working directory", cause)
}

// NoVersionFound returns an error for text without a version token
func NoVersionFound() *JavartError {
	return New(ExitNoVersionFound, "no java version string found")
}

// NotAnExecutable returns an error for a path that fails the **/bin/java shape check
func NotAnExecutable(path string) *JavartError {
	return &JavartError{
		Code:    ExitNotAnExecutable,
		Message: fmt.Sprintf("path does not look like a java executable [**/bin/java(.exe)]: %s", path),
		Path:    path,
	}
}

// SpawnFailed returns an error for a candidate the OS could not start
func SpawnFailed(path string, cause error) *JavartError {
	return &JavartError{
		Code:    ExitSpawnFailed,
		Message: fmt.Sprintf("failed to run %s", path),
		Path:    path,
		Cause:   cause,
	}
}

// VersionQueryFailed returns an error for a candidate that ran but did not succeed
func VersionQueryFailed(path string, cause error) *JavartError {
	return &JavartError{
		Code:    ExitVersionQueryFailed,
		Message: fmt.Sprintf("failed to get java version: %s", path),
		Path:    path,
		Cause:   cause,
	}
}

// Other error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *JavartError {
	return Wrap(ExitConfigError, message, cause)
}

// CatalogError returns an error for catalog encoding or decoding
func CatalogError(message string, cause error) *JavartError {
	return Wrap(ExitCatalogError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *JavartError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var javartErr *JavartError
	if errors.As(err, &javartErr) {
		return javartErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
