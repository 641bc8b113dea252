// Package testutil provides testing utilities for irframe tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"
)

// IsolateConfig points XDG_CONFIG_HOME at a temporary directory and resets
// viper so a test never reads or writes the user's real configuration.
// Returns the temporary XDG_CONFIG_HOME. Viper is reset again on cleanup.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	viper.Reset()
	t.Cleanup(viper.Reset)

	return dir
}

// WriteConfig writes a config.yaml with the given content under the
// irframe directory of xdgDir and returns its path.
func WriteConfig(t *testing.T, xdgDir, content string) string {
	t.Helper()

	dir := filepath.Join(xdgDir, "irframe")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// WriteFile writes content to a file relative to dir, creating parent
// directories, and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// PlainColors forces lipgloss to render without ANSI color sequences for the
// duration of the test so rendered output can be compared as text.
func PlainColors(t *testing.T) {
	t.Helper()
	ColorProfile(t, termenv.Ascii)
}

// ColorProfile sets the lipgloss color profile for the duration of the test.
// Use termenv.TrueColor to assert on exact color escape sequences.
func ColorProfile(t *testing.T, p termenv.Profile) {
	t.Helper()

	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}
