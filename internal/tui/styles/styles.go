// Package styles holds the lipgloss styles for the irframe TUI and the
// theme machinery that rebuilds them.
//
// The package-level variables always reflect the active theme. They are
// reassigned by [SetActiveTheme] and must only be read from the Bubble Tea
// event loop or from single-threaded CLI code.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	AccentColor       = lipgloss.Color("#10B981")
	AccentStrongColor = lipgloss.Color("#059669")
	OnAccentColor     = lipgloss.Color("#FFFFFF")
	BackgroundColor   = lipgloss.Color("#111827")
	SurfaceColor      = lipgloss.Color("#1F2937")
	BorderColor       = lipgloss.Color("#374151")
	TextColor         = lipgloss.Color("#F9FAFB")
	MutedColor        = lipgloss.Color("#D1D5DB")
	WarningColor      = lipgloss.Color("#F59E0B")
	ErrorColor        = lipgloss.Color("#F87171")

	// Convenience styles for colors
	Accent  = lipgloss.NewStyle().Foreground(AccentColor)
	Text    = lipgloss.NewStyle().Foreground(TextColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1)

	HeaderIcon = lipgloss.NewStyle().
			Foreground(AccentColor).
			MarginRight(1)

	// Phase picker buttons. The active one has a heavier border so it stays
	// distinct when colors are stripped.
	PickerActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(OnAccentColor).
			Background(AccentColor).
			Border(lipgloss.ThickBorder()).
			BorderForeground(AccentStrongColor).
			Padding(0, 1)

	PickerInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Background(BackgroundColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Detail panel
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2)

	PanelIcon = lipgloss.NewStyle().
			Foreground(AccentColor).
			MarginRight(1)

	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	PanelDescription = lipgloss.NewStyle().
				Foreground(MutedColor).
				MarginBottom(1)

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			MarginTop(1)

	// Action checklist
	ActionCheck = lipgloss.NewStyle().
			Foreground(AccentColor).
			MarginRight(1)

	ActionText = lipgloss.NewStyle().
			Foreground(TextColor)

	// Resources & Tools
	ToolingBlock = lipgloss.NewStyle().
			Background(SurfaceColor).
			Padding(0, 1).
			MarginRight(2)

	ToolingHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SurfaceColor)

	ToolingItem = lipgloss.NewStyle().
			Foreground(MutedColor).
			Background(SurfaceColor)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor)

	HelpDesc = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Messages
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor)
)
