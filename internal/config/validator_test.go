package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got errors: %v", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:      "theme with spaces",
			modify:    func(c *Config) { c.TUI.Theme = "my theme" },
			wantField: "tui.theme",
		},
		{
			name:      "theme with uppercase",
			modify:    func(c *Config) { c.TUI.Theme = "Nord" },
			wantField: "tui.theme",
		},
		{
			name:      "unknown icon set",
			modify:    func(c *Config) { c.TUI.Icons = "emoji" },
			wantField: "tui.icons",
		},
		{
			name:      "negative max width",
			modify:    func(c *Config) { c.TUI.MaxWidth = -1 },
			wantField: "tui.max_width",
		},
		{
			name:      "max width too small",
			modify:    func(c *Config) { c.TUI.MaxWidth = 40 },
			wantField: "tui.max_width",
		},
		{
			name:      "invalid log level",
			modify:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
		{
			name:      "negative log size",
			modify:    func(c *Config) { c.Logging.MaxSizeMB = -5 },
			wantField: "logging.max_size_mb",
		},
		{
			name:      "log size too large",
			modify:    func(c *Config) { c.Logging.MaxSizeMB = 4096 },
			wantField: "logging.max_size_mb",
		},
		{
			name:      "negative backups",
			modify:    func(c *Config) { c.Logging.MaxBackups = -1 },
			wantField: "logging.max_backups",
		},
		{
			name:      "unknown export format",
			modify:    func(c *Config) { c.Export.Format = "xml" },
			wantField: "export.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_AcceptsEdgeValues(t *testing.T) {
	cfg := Default()
	cfg.TUI.Theme = "solarized-dark"
	cfg.TUI.MaxWidth = 60
	cfg.Logging.Level = "WARN"
	cfg.Logging.MaxSizeMB = 0
	cfg.Logging.MaxBackups = 0
	cfg.Export.Format = "JSON"

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.TUI.Icons = "emoji"
	cfg.Logging.Level = "loud"
	cfg.Export.Format = "csv"

	if errs := cfg.Validate(); len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
}
