package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/bridgectl/internal/link"
	"github.com/thoreinstein/bridgectl/internal/platform"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPolicy indicates an unrecognized conflict policy.
	ErrInvalidPolicy = errors.New("invalid conflict policy")

	// ErrInvalidLinkKind indicates an unrecognized link kind.
	ErrInvalidLinkKind = errors.New("invalid link kind")

	// ErrInvalidBackupKeep indicates a negative backup retention count.
	ErrInvalidBackupKeep = errors.New("backup_keep must be >= 0")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.ConflictPolicy != "" && !link.ValidPolicy(link.ConflictPolicy(cfg.ConflictPolicy)) {
		errs = append(errs, &FieldError{
			Field: "conflict_policy",
			Value: cfg.ConflictPolicy,
			Err:   ErrInvalidPolicy,
		})
	}

	// Empty link_kind means "probe and pick the best".
	if cfg.LinkKind != "" && !platform.ValidKind(platform.LinkKind(cfg.LinkKind)) {
		errs = append(errs, &FieldError{
			Field: "link_kind",
			Value: cfg.LinkKind,
			Err:   ErrInvalidLinkKind,
		})
	}

	if cfg.BackupKeep < 0 {
		errs = append(errs, ErrInvalidBackupKeep)
	}

	if cfg.BlueprintFile != "" {
		if err := validatePath(cfg.BlueprintFile); err != nil {
			errs = append(errs, &FieldError{
				Field: "blueprint_file",
				Value: cfg.BlueprintFile,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
