package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFormat indicates an unsupported output format
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidConcurrency indicates a negative worker count
	ErrInvalidConcurrency = errors.New("invalid concurrency")

	// ErrInvalidMaxFileSize indicates a non-positive file size ceiling
	ErrInvalidMaxFileSize = errors.New("invalid max file size")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	format := strings.ToLower(cfg.Output.Format)
	if format != "json" && format != "text" {
		errs = append(errs, fmt.Errorf("%w: must be 'json' or 'text', got '%s'", ErrInvalidFormat, cfg.Output.Format))
	}

	if cfg.Scan.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("%w: must be >= 0, got %d", ErrInvalidConcurrency, cfg.Scan.Concurrency))
	}

	if cfg.Limits.MaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: must be positive, got %d", ErrInvalidMaxFileSize, cfg.Limits.MaxFileSize))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
