package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault        ThemeName = "default"         // Emerald on dark gray
	ThemeNord           ThemeName = "nord"            // Nord - cool blue-gray
	ThemeDracula        ThemeName = "dracula"         // Dracula theme colors
	ThemeSolarizedDark  ThemeName = "solarized-dark"  // Solarized Dark by Ethan Schoonover
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light variant
	ThemeGruvbox        ThemeName = "gruvbox"         // Gruvbox retro groove
	ThemeTokyoNight     ThemeName = "tokyo-night"     // Tokyo Night modern theme
	ThemeCatppuccin     ThemeName = "catppuccin"      // Catppuccin Mocha pastel theme
	ThemeHighContrast   ThemeName = "high-contrast"   // Black and white with a yellow accent
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeNord),
		string(ThemeDracula),
		string(ThemeSolarizedDark),
		string(ThemeSolarizedLight),
		string(ThemeGruvbox),
		string(ThemeTokyoNight),
		string(ThemeCatppuccin),
		string(ThemeHighContrast),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	return IsBuiltinTheme(name) || IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Accent is the emphasis color: the active picker button, checkmarks, the header icon
	Accent lipgloss.Color
	// AccentStrong is the border of the active picker button
	AccentStrong lipgloss.Color
	// OnAccent is text drawn on top of Accent
	OnAccent lipgloss.Color
	// Background is the picker button fill for inactive phases
	Background lipgloss.Color
	// Surface is the detail and tooling panel fill
	Surface lipgloss.Color
	// Border is used for panel and inactive button borders
	Border lipgloss.Color
	// Text is the primary text color
	Text lipgloss.Color
	// Muted is used for descriptions and help text
	Muted lipgloss.Color
	// Warning is used for non-fatal notices (e.g. config reload failures)
	Warning lipgloss.Color
	// Error is used for error messages
	Error lipgloss.Color
}

// DefaultPalette returns the emerald on dark gray palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#10B981"), // Emerald-500
		AccentStrong: lipgloss.Color("#059669"), // Emerald-600
		OnAccent:     lipgloss.Color("#FFFFFF"),
		Background:   lipgloss.Color("#111827"), // Gray-900
		Surface:      lipgloss.Color("#1F2937"), // Gray-800
		Border:       lipgloss.Color("#374151"), // Gray-700
		Text:         lipgloss.Color("#F9FAFB"), // Gray-50
		Muted:        lipgloss.Color("#D1D5DB"), // Gray-300
		Warning:      lipgloss.Color("#F59E0B"), // Amber
		Error:        lipgloss.Color("#F87171"), // Red-400
	}
}

// NordPalette returns the Nord color palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#88C0D0"), // Frost cyan
		AccentStrong: lipgloss.Color("#5E81AC"), // Frost deep blue
		OnAccent:     lipgloss.Color("#2E3440"),
		Background:   lipgloss.Color("#2E3440"), // Polar night 0
		Surface:      lipgloss.Color("#3B4252"), // Polar night 1
		Border:       lipgloss.Color("#4C566A"), // Polar night 3
		Text:         lipgloss.Color("#ECEFF4"), // Snow storm 2
		Muted:        lipgloss.Color("#D8DEE9"), // Snow storm 0
		Warning:      lipgloss.Color("#EBCB8B"),
		Error:        lipgloss.Color("#BF616A"),
	}
}

// DraculaPalette returns the Dracula color palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#50FA7B"), // Green
		AccentStrong: lipgloss.Color("#BD93F9"), // Purple
		OnAccent:     lipgloss.Color("#282A36"),
		Background:   lipgloss.Color("#282A36"),
		Surface:      lipgloss.Color("#343746"),
		Border:       lipgloss.Color("#44475A"), // Selection
		Text:         lipgloss.Color("#F8F8F2"),
		Muted:        lipgloss.Color("#BFBFBF"),
		Warning:      lipgloss.Color("#F1FA8C"),
		Error:        lipgloss.Color("#FF5555"),
	}
}

// SolarizedDarkPalette returns the Solarized Dark color palette.
func SolarizedDarkPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#859900"), // Green
		AccentStrong: lipgloss.Color("#268BD2"), // Blue
		OnAccent:     lipgloss.Color("#FDF6E3"),
		Background:   lipgloss.Color("#002B36"), // Base03
		Surface:      lipgloss.Color("#073642"), // Base02
		Border:       lipgloss.Color("#586E75"), // Base01
		Text:         lipgloss.Color("#93A1A1"), // Base1
		Muted:        lipgloss.Color("#839496"), // Base0
		Warning:      lipgloss.Color("#B58900"),
		Error:        lipgloss.Color("#DC322F"),
	}
}

// SolarizedLightPalette returns the Solarized Light color palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#859900"), // Green
		AccentStrong: lipgloss.Color("#268BD2"), // Blue
		OnAccent:     lipgloss.Color("#FDF6E3"),
		Background:   lipgloss.Color("#FDF6E3"), // Base3
		Surface:      lipgloss.Color("#EEE8D5"), // Base2
		Border:       lipgloss.Color("#93A1A1"), // Base1
		Text:         lipgloss.Color("#586E75"), // Base01
		Muted:        lipgloss.Color("#657B83"), // Base00
		Warning:      lipgloss.Color("#B58900"),
		Error:        lipgloss.Color("#DC322F"),
	}
}

// GruvboxPalette returns the Gruvbox dark color palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#B8BB26"), // Green
		AccentStrong: lipgloss.Color("#83A598"), // Aqua
		OnAccent:     lipgloss.Color("#282828"),
		Background:   lipgloss.Color("#282828"), // bg0
		Surface:      lipgloss.Color("#3C3836"), // bg1
		Border:       lipgloss.Color("#504945"), // bg2
		Text:         lipgloss.Color("#EBDBB2"),
		Muted:        lipgloss.Color("#BDAE93"),
		Warning:      lipgloss.Color("#FABD2F"),
		Error:        lipgloss.Color("#FB4934"),
	}
}

// TokyoNightPalette returns the Tokyo Night color palette.
func TokyoNightPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#9ECE6A"), // Green
		AccentStrong: lipgloss.Color("#7AA2F7"), // Blue
		OnAccent:     lipgloss.Color("#1A1B26"),
		Background:   lipgloss.Color("#1A1B26"),
		Surface:      lipgloss.Color("#24283B"),
		Border:       lipgloss.Color("#292E42"),
		Text:         lipgloss.Color("#C0CAF5"),
		Muted:        lipgloss.Color("#A9B1D6"),
		Warning:      lipgloss.Color("#E0AF68"),
		Error:        lipgloss.Color("#F7768E"),
	}
}

// CatppuccinPalette returns the Catppuccin Mocha color palette.
func CatppuccinPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#A6E3A1"), // Green
		AccentStrong: lipgloss.Color("#89B4FA"), // Blue
		OnAccent:     lipgloss.Color("#1E1E2E"),
		Background:   lipgloss.Color("#1E1E2E"), // Base
		Surface:      lipgloss.Color("#313244"), // Surface0
		Border:       lipgloss.Color("#45475A"), // Surface1
		Text:         lipgloss.Color("#CDD6F4"),
		Muted:        lipgloss.Color("#BAC2DE"), // Subtext1
		Warning:      lipgloss.Color("#F9E2AF"),
		Error:        lipgloss.Color("#F38BA8"),
	}
}

// HighContrastPalette returns a black and white palette with a yellow accent.
func HighContrastPalette() *ColorPalette {
	return &ColorPalette{
		Accent:       lipgloss.Color("#FFD700"),
		AccentStrong: lipgloss.Color("#FFFFFF"),
		OnAccent:     lipgloss.Color("#000000"),
		Background:   lipgloss.Color("#000000"),
		Surface:      lipgloss.Color("#000000"),
		Border:       lipgloss.Color("#FFFFFF"),
		Text:         lipgloss.Color("#FFFFFF"),
		Muted:        lipgloss.Color("#E0E0E0"),
		Warning:      lipgloss.Color("#FFD700"),
		Error:        lipgloss.Color("#FF4040"),
	}
}

var builtinPalettes = map[ThemeName]func() *ColorPalette{
	ThemeDefault:        DefaultPalette,
	ThemeNord:           NordPalette,
	ThemeDracula:        DraculaPalette,
	ThemeSolarizedDark:  SolarizedDarkPalette,
	ThemeSolarizedLight: SolarizedLightPalette,
	ThemeGruvbox:        GruvboxPalette,
	ThemeTokyoNight:     TokyoNightPalette,
	ThemeCatppuccin:     CatppuccinPalette,
	ThemeHighContrast:   HighContrastPalette,
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}
	if fn, ok := builtinPalettes[name]; ok {
		return fn()
	}
	return DefaultPalette()
}
