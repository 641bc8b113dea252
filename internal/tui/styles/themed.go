package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/irframe/internal/errors"
)

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	Name ThemeName

	// Colors from the palette
	AccentColor       lipgloss.Color
	AccentStrongColor lipgloss.Color
	OnAccentColor     lipgloss.Color
	BackgroundColor   lipgloss.Color
	SurfaceColor      lipgloss.Color
	BorderColor       lipgloss.Color
	TextColor         lipgloss.Color
	MutedColor        lipgloss.Color
	WarningColor      lipgloss.Color
	ErrorColor        lipgloss.Color

	// Convenience styles for colors
	Accent  lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Header     lipgloss.Style
	HeaderIcon lipgloss.Style

	PickerActive   lipgloss.Style
	PickerInactive lipgloss.Style

	Panel            lipgloss.Style
	PanelIcon        lipgloss.Style
	PanelTitle       lipgloss.Style
	PanelDescription lipgloss.Style
	SectionTitle     lipgloss.Style

	ActionCheck lipgloss.Style
	ActionText  lipgloss.Style

	ToolingBlock   lipgloss.Style
	ToolingHeading lipgloss.Style
	ToolingItem    lipgloss.Style

	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	ErrorMsg   lipgloss.Style
	WarningMsg lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		AccentColor:       p.Accent,
		AccentStrongColor: p.AccentStrong,
		OnAccentColor:     p.OnAccent,
		BackgroundColor:   p.Background,
		SurfaceColor:      p.Surface,
		BorderColor:       p.Border,
		TextColor:         p.Text,
		MutedColor:        p.Muted,
		WarningColor:      p.Warning,
		ErrorColor:        p.Error,
	}

	s.Accent = lipgloss.NewStyle().Foreground(p.Accent)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		MarginBottom(1)
	s.HeaderIcon = lipgloss.NewStyle().
		Foreground(p.Accent).
		MarginRight(1)

	s.PickerActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.OnAccent).
		Background(p.Accent).
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.AccentStrong).
		Padding(0, 1)
	s.PickerInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Background).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
	s.PanelIcon = lipgloss.NewStyle().
		Foreground(p.Accent).
		MarginRight(1)
	s.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)
	s.PanelDescription = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginBottom(1)
	s.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		MarginTop(1)

	s.ActionCheck = lipgloss.NewStyle().
		Foreground(p.Accent).
		MarginRight(1)
	s.ActionText = lipgloss.NewStyle().
		Foreground(p.Text)

	s.ToolingBlock = lipgloss.NewStyle().
		Background(p.Surface).
		Padding(0, 1).
		MarginRight(2)
	s.ToolingHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Surface)
	s.ToolingItem = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)
	s.HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	s.WarningMsg = lipgloss.NewStyle().
		Foreground(p.Warning)

	return s
}

var activeTheme *ThemedStyles

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
	activeTheme.Name = ThemeDefault
}

// SetActiveTheme updates the active theme to the specified theme name and
// reassigns the package-level style variables. Unknown names get the
// default palette.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
	activeTheme.Name = name
	syncGlobalStyles()
}

// ApplyTheme activates a built-in or custom theme by name. An unknown name
// activates the default theme and returns a NotFoundError wrapping
// errors.ErrThemeNotFound.
func ApplyTheme(name string) error {
	if name == "" {
		name = string(ThemeDefault)
	}
	if !IsValidTheme(name) {
		SetActiveTheme(ThemeDefault)
		return errors.NewNotFoundError("theme", name).WithCause(errors.ErrThemeNotFound)
	}
	SetActiveTheme(ThemeName(name))
	return nil
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// syncGlobalStyles updates the global style variables to match the active theme.
func syncGlobalStyles() {
	AccentColor = activeTheme.AccentColor
	AccentStrongColor = activeTheme.AccentStrongColor
	OnAccentColor = activeTheme.OnAccentColor
	BackgroundColor = activeTheme.BackgroundColor
	SurfaceColor = activeTheme.SurfaceColor
	BorderColor = activeTheme.BorderColor
	TextColor = activeTheme.TextColor
	MutedColor = activeTheme.MutedColor
	WarningColor = activeTheme.WarningColor
	ErrorColor = activeTheme.ErrorColor

	Accent = activeTheme.Accent
	Text = activeTheme.Text
	Muted = activeTheme.Muted
	Warning = activeTheme.Warning
	Error = activeTheme.Error

	Header = activeTheme.Header
	HeaderIcon = activeTheme.HeaderIcon

	PickerActive = activeTheme.PickerActive
	PickerInactive = activeTheme.PickerInactive

	Panel = activeTheme.Panel
	PanelIcon = activeTheme.PanelIcon
	PanelTitle = activeTheme.PanelTitle
	PanelDescription = activeTheme.PanelDescription
	SectionTitle = activeTheme.SectionTitle

	ActionCheck = activeTheme.ActionCheck
	ActionText = activeTheme.ActionText

	ToolingBlock = activeTheme.ToolingBlock
	ToolingHeading = activeTheme.ToolingHeading
	ToolingItem = activeTheme.ToolingItem

	HelpBar = activeTheme.HelpBar
	HelpKey = activeTheme.HelpKey
	HelpDesc = activeTheme.HelpDesc

	ErrorMsg = activeTheme.ErrorMsg
	WarningMsg = activeTheme.WarningMsg
}
