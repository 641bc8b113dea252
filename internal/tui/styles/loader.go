package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/errors"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Night Shift")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Border     string `yaml:"border"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`

	// Optional, derived from the required colors when empty
	AccentStrong string `yaml:"accent_strong,omitempty"`
	OnAccent     string `yaml:"on_accent,omitempty"`
	Warning      string `yaml:"warning,omitempty"`
	Error        string `yaml:"error,omitempty"`
}

// ThemeFileVersion is the only supported theme file format version.
const ThemeFileVersion = "1"

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return ParseThemeFile(data)
}

// ParseThemeFile decodes and validates a theme from YAML bytes.
func ParseThemeFile(data []byte) (*ThemeFile, error) {
	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.NewValidationError("theme name is required").WithField("name")
	}
	if t.Version == "" {
		return errors.NewValidationError("theme version is required").WithField("version")
	}
	if t.Version != ThemeFileVersion {
		return errors.NewValidationError("unsupported theme version (supported: 1)").
			WithField("version").
			WithValue(t.Version)
	}

	required := []struct{ name, value string }{
		{"accent", t.Colors.Accent},
		{"background", t.Colors.Background},
		{"surface", t.Colors.Surface},
		{"border", t.Colors.Border},
		{"text", t.Colors.Text},
		{"muted", t.Colors.Muted},
	}
	for _, c := range required {
		if c.value == "" {
			return errors.NewValidationError("color is required").WithField("colors." + c.name)
		}
		if !isValidHexColor(c.value) {
			return errors.NewValidationError("expected #RGB or #RRGGBB").
				WithField("colors." + c.name).
				WithValue(c.value)
		}
	}

	optional := []struct{ name, value string }{
		{"accent_strong", t.Colors.AccentStrong},
		{"on_accent", t.Colors.OnAccent},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
	}
	for _, c := range optional {
		if c.value != "" && !isValidHexColor(c.value) {
			return errors.NewValidationError("expected #RGB or #RRGGBB").
				WithField("colors." + c.name).
				WithValue(c.value)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	defaults := DefaultPalette()
	return &ColorPalette{
		Accent:       lipgloss.Color(t.Colors.Accent),
		AccentStrong: colorOrDefault(t.Colors.AccentStrong, t.Colors.Accent),
		OnAccent:     colorOrDefault(t.Colors.OnAccent, t.Colors.Background),
		Background:   lipgloss.Color(t.Colors.Background),
		Surface:      lipgloss.Color(t.Colors.Surface),
		Border:       lipgloss.Color(t.Colors.Border),
		Text:         lipgloss.Color(t.Colors.Text),
		Muted:        lipgloss.Color(t.Colors.Muted),
		Warning:      colorOrDefault(t.Colors.Warning, string(defaults.Warning)),
		Error:        colorOrDefault(t.Colors.Error, string(defaults.Error)),
	}
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

var (
	customMu     sync.RWMutex
	customThemes = make(map[ThemeName]*ThemeFile)
)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	return GetCustomTheme(ThemeName(name)) != nil
}

// CustomThemeNames returns the sorted names of all registered custom themes.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()

	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
// Primarily used for testing.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = make(map[ThemeName]*ThemeFile)
}

// themesDirFn returns the themes directory. Tests override it.
var themesDirFn = func() string {
	return filepath.Join(config.ConfigDir(), "themes")
}

// ThemesDir returns the directory where custom themes are stored.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc sets the function used to determine the themes directory.
// Returns the previous function.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// DiscoverCustomThemes loads every *.yaml / *.yml file in the themes
// directory and registers it under its file name. A missing directory is
// not an error. Invalid files are skipped and reported.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		themeName := strings.TrimSuffix(name, ext)
		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// ExportTheme renders a built-in or custom theme as YAML, suitable as a
// starting point for a custom theme.
func ExportTheme(name ThemeName) ([]byte, error) {
	if custom := GetCustomTheme(name); custom != nil {
		return yaml.Marshal(custom)
	}
	fn, ok := builtinPalettes[name]
	if !ok {
		return nil, errors.NewNotFoundError("theme", string(name)).WithCause(errors.ErrThemeNotFound)
	}
	return yaml.Marshal(paletteToThemeFile(string(name), fn()))
}

// paletteToThemeFile converts a ColorPalette to a ThemeFile for export.
func paletteToThemeFile(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: fmt.Sprintf("Exported from built-in theme '%s'", name),
		Version:     ThemeFileVersion,
		Colors: ThemeColors{
			Accent:       string(p.Accent),
			Background:   string(p.Background),
			Surface:      string(p.Surface),
			Border:       string(p.Border),
			Text:         string(p.Text),
			Muted:        string(p.Muted),
			AccentStrong: string(p.AccentStrong),
			OnAccent:     string(p.OnAccent),
			Warning:      string(p.Warning),
			Error:        string(p.Error),
		},
	}
}

// SaveTheme writes theme to <themes dir>/<name>.yaml, creating the
// directory if needed, and registers it.
func SaveTheme(name string, theme *ThemeFile) error {
	if IsBuiltinTheme(name) {
		return errors.NewValidationError("cannot override built-in theme").WithField("name").WithValue(name)
	}
	if err := theme.Validate(); err != nil {
		return err
	}

	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}

	data, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing theme: %w", err)
	}

	RegisterCustomTheme(ThemeName(name), theme)
	return nil
}
