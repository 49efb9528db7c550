package configloader

import (
	"fmt"
	"path"
	"strings"

	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "check.exclude[1]").
	Field string

	Value any

	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Flavor != "" && !IsValidFlavor(cfg.Flavor) {
		result.errorf("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}
	if cfg.Color != "" && !IsValidColor(cfg.Color) {
		result.errorf("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.Dump.Width < 0 {
		result.errorf("dump.width", cfg.Dump.Width, "width must be >= 0 (0 follows the terminal)")
	} else if cfg.Dump.Width > 0 && cfg.Dump.Width < 20 {
		result.warnf("dump.width", cfg.Dump.Width, "width %d leaves little room for previews", cfg.Dump.Width)
	}

	if cfg.Check.Jobs < 0 {
		result.errorf("check.jobs", cfg.Check.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Check.MaxBytes < 0 {
		result.errorf("check.max_bytes", cfg.Check.MaxBytes, "max_bytes must be >= 0 (0 means unlimited)")
	}

	for i, ext := range cfg.Check.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.errorf(fmt.Sprintf("check.extensions[%d]", i), ext, "extension %q must start with a dot", ext)
		}
	}
	if cfg.Check.Extensions != nil && len(cfg.Check.Extensions) == 0 {
		result.warnf("check.extensions", nil, "no extensions; directory walks will find nothing")
	}

	for i, pattern := range cfg.Check.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			result.errorf(fmt.Sprintf("check.exclude[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

// ValidateWithFile validates cfg and attributes findings to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidFlavor returns true if the flavor is known.
func IsValidFlavor(f config.Flavor) bool {
	return f == config.FlavorCommonMark || f == config.FlavorGFM
}

// IsValidColor returns true if the color mode is known.
func IsValidColor(c config.ColorMode) bool {
	switch c {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		return true
	default:
		return false
	}
}
