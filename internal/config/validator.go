package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "logging.max_size_mb")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// themeNameRegex matches built-in and custom theme names (file stems)
var themeNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateExport()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// Existence of the theme is checked when it is applied, since custom
	// themes live on disk. Here only the name format is checked.
	if c.TUI.Theme != "" && !themeNameRegex.MatchString(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must be lowercase letters, digits, hyphens or underscores",
		})
	}

	if c.TUI.Icons != "" && !slices.Contains(ValidIconSets(), c.TUI.Icons) {
		errors = append(errors, ValidationError{
			Field:   "tui.icons",
			Value:   c.TUI.Icons,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidIconSets(), ", ")),
		})
	}

	// 0 means unlimited
	const minWidth = 60
	if c.TUI.MaxWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_width",
			Value:   c.TUI.MaxWidth,
			Message: "must be non-negative (0 uses the full terminal)",
		})
	} else if c.TUI.MaxWidth > 0 && c.TUI.MaxWidth < minWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.max_width",
			Value:   c.TUI.MaxWidth,
			Message: fmt.Sprintf("must be at least %d columns", minWidth),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative (0 disables rotation)",
		})
	}

	const maxLogSizeMB = 1024
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %d", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateExport validates the ExportConfig
func (c *Config) validateExport() []ValidationError {
	var errors []ValidationError

	if c.Export.Format != "" && !slices.Contains(ValidExportFormats(), strings.ToLower(c.Export.Format)) {
		errors = append(errors, ValidationError{
			Field:   "export.format",
			Value:   c.Export.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidExportFormats(), ", ")),
		})
	}

	return errors
}
