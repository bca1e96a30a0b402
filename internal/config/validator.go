package config

import (
	"fmt"
	"strings"

	"github.com/tungetti/teelog/internal/errors"
	"github.com/tungetti/teelog/internal/logging"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s", e.Field, e.Message)
}

// Validator validates configuration.
type Validator struct {
	validColors map[string]bool
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{
		validColors: map[string]bool{
			ColorAuto:   true,
			ColorAlways: true,
			ColorNever:  true,
		},
	}
}

// Validate validates the configuration and returns all errors.
func (v *Validator) Validate(cfg *Config) []error {
	var errs []error

	if _, ok := logging.ParseVerbosity(cfg.Verbosity); !ok {
		errs = append(errs, &ValidationError{
			Field:   "verbosity",
			Message: fmt.Sprintf("invalid verbosity %q: must be one of: minimal, normal, more, maximum", cfg.Verbosity),
		})
	}

	if !v.validColors[strings.ToLower(cfg.Color)] {
		errs = append(errs, &ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("invalid color mode %q: must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.MaxLogFiles < 0 {
		errs = append(errs, &ValidationError{
			Field:   "max_log_files",
			Message: "max log files cannot be negative",
		})
	}

	if cfg.CreateLogFile && strings.TrimSpace(cfg.LogDirectory) == "" {
		errs = append(errs, &ValidationError{
			Field:   "log_directory",
			Message: "log directory cannot be empty when file logging is enabled",
		})
	}

	names := []string{"debug", "info", "warning", "error", "fatal"}
	for i, idx := range cfg.Palette.Indices() {
		if !isValidColorIndex(idx) {
			errs = append(errs, &ValidationError{
				Field:   "palette." + names[i],
				Message: fmt.Sprintf("colour index %d out of range 0-255", idx),
			})
		}
	}

	if cfg.ConfigDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "config_dir",
			Message: "config directory cannot be empty",
		})
	}

	return errs
}

// ValidateOrError validates and returns a single wrapped error.
// If there are no validation errors, nil is returned.
func (v *Validator) ValidateOrError(cfg *Config) error {
	errs := v.Validate(cfg)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return errors.New(errors.Configuration, strings.Join(msgs, "; ")).
		WithOp("config.Validate")
}

// IsValid returns true if the configuration is valid.
func (v *Validator) IsValid(cfg *Config) bool {
	return len(v.Validate(cfg)) == 0
}

func isValidColorIndex(n int) bool {
	return n >= 0 && n <= 255
}

// ValidateField validates a single field and returns an error if invalid.
// This is useful for validating individual values before setting them.
func ValidateField(field, value string) error {
	v := NewValidator()

	switch field {
	case "verbosity":
		if _, ok := logging.ParseVerbosity(value); !ok {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid verbosity %q", value),
			}
		}
	case "color":
		if !v.validColors[strings.ToLower(value)] {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid color mode %q", value),
			}
		}
	}

	return nil
}
