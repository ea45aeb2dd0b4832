package errors

import (
	"errors"
	"fmt"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrBlueprintNotFound indicates the blueprint file does not exist.
	// Fatal to a reconciliation run; nothing can proceed without it.
	ErrBlueprintNotFound = errors.New("blueprint not found")

	// ErrBlueprintMalformed indicates the blueprint file could not be parsed
	// or failed validation. Fatal to the whole run.
	ErrBlueprintMalformed = errors.New("blueprint malformed")

	// ErrSourceMissing indicates a link item's source path does not exist
	// and the item does not allow creating it. Recoverable; the item is skipped.
	ErrSourceMissing = errors.New("source missing")

	// ErrTargetConflict indicates the link target already exists and points
	// somewhere other than the source. Recoverable via conflict policy.
	ErrTargetConflict = errors.New("target conflict")

	// ErrLinkCreationFailed indicates the link could not be created
	// (unsupported link kind, permissions). Recorded per item; never aborts
	// the batch.
	ErrLinkCreationFailed = errors.New("link creation failed")

	// ErrBackupFailed indicates a backup could not be created. The
	// conflicting overwrite must not proceed when this is returned.
	ErrBackupFailed = errors.New("backup failed")

	// ErrUnknownTool indicates the tool identifier is not in the known tool set.
	ErrUnknownTool = errors.New("unknown tool")
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewBlueprintError creates an ExitError with ExitUser code and a standard
// suggestion pointing at blueprint initialization.
func NewBlueprintError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: bridgectl init",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
