// Package errors provides error handling conventions for the bridgectl CLI.
//
// This package defines sentinel errors for the failure taxonomy of the
// link-reconciliation engine, an ExitError type for CLI exit code handling,
// and exit code constants following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, bridgeerrors.ErrBlueprintNotFound) {
//	    // handle missing blueprint
//	}
//
// The taxonomy splits into two propagation classes. Blueprint errors
// (ErrBlueprintNotFound, ErrBlueprintMalformed) are fatal to the whole run
// and propagate to the caller unmodified. Item-level errors (ErrSourceMissing,
// ErrTargetConflict, ErrLinkCreationFailed, ErrBackupFailed) are caught at
// the reconciler boundary and downgraded to report entries; one item's
// failure never aborts the batch.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for CLI applications. It supports error unwrapping via
// [errors.Unwrap] and [errors.As]:
//
//	var exitErr *bridgeerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
