package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/atheme/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

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

	if err := validatePath(cfg.ConfigFile); err != nil {
		errs = append(errs, &PathError{
			Field: KeyConfigFile,
			Path:  cfg.ConfigFile,
			Err:   err,
		})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty means auto-discovery
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." || strings.HasSuffix(path, string(filepath.Separator)) {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
