package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
)

// Section headings of the detail panel.
const (
	SectionActions = "Required Actions"
	SectionTooling = "Resources & Tools"
)

// toolingSideBySideMin is the content width from which tooling blocks are
// laid out in one row instead of stacked.
const toolingSideBySideMin = 64

// Detail renders the content of the detail panel for one phase. The panel
// frame itself is drawn by the caller around a viewport.
type Detail struct {
	Record      phase.Record
	Tooling     []phase.ToolingBlock
	ShowTooling bool
	Icons       IconSet
	// Width is the content width inside the panel frame. 0 disables wrapping.
	Width int
}

// Render returns the panel content.
func (d Detail) Render() string {
	sections := []string{
		d.renderTitle(),
		d.renderActions(),
	}
	if d.ShowTooling && len(d.Tooling) > 0 {
		sections = append(sections, d.renderTooling())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (d Detail) wrap(s lipgloss.Style, width int) lipgloss.Style {
	if width > 0 {
		return s.Width(width)
	}
	return s
}

func (d Detail) renderTitle() string {
	icon := styles.PanelIcon.Render(d.Icons.Glyph(d.Record.Icon))
	titleWidth := 0
	if d.Width > 0 {
		titleWidth = max(d.Width-lipgloss.Width(icon), 1)
	}
	title := lipgloss.JoinHorizontal(lipgloss.Top, icon, d.wrap(styles.PanelTitle, titleWidth).Render(d.Record.Title))
	desc := d.wrap(styles.PanelDescription, d.Width).Render(d.Record.Description)
	return lipgloss.JoinVertical(lipgloss.Left, title, desc)
}

func (d Detail) renderActions() string {
	check := styles.ActionCheck.Render(d.Icons.Glyph(phase.IconCheckCircle))
	textWidth := 0
	if d.Width > 0 {
		textWidth = max(d.Width-lipgloss.Width(check), 1)
	}
	textStyle := d.wrap(styles.ActionText, textWidth)

	lines := []string{styles.SectionTitle.Render(SectionActions)}
	for _, action := range d.Record.Actions {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, check, textStyle.Render(action)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (d Detail) renderTooling() string {
	sideBySide := d.Width == 0 || d.Width >= toolingSideBySideMin

	blockWidth := 0
	if d.Width > 0 {
		margin := styles.ToolingBlock.GetHorizontalMargins()
		if sideBySide {
			blockWidth = d.Width/len(d.Tooling) - margin
		} else {
			blockWidth = d.Width - margin
		}
		blockWidth = max(blockWidth, 1)
	}

	blocks := make([]string, 0, len(d.Tooling))
	for _, b := range d.Tooling {
		innerWidth := 0
		if blockWidth > 0 {
			innerWidth = max(blockWidth-styles.ToolingBlock.GetHorizontalPadding(), 1)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			d.wrap(styles.ToolingHeading, innerWidth).Render(b.Heading),
			d.wrap(styles.ToolingItem, innerWidth).Render(strings.Join(b.Tools, ", ")),
		)
		blocks = append(blocks, d.wrap(styles.ToolingBlock, blockWidth).Render(body))
	}

	var row string
	if sideBySide {
		row = lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	} else {
		row = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.SectionTitle.Render(SectionTooling), row)
}

// PanelFrameSize returns the columns and rows the detail panel frame adds
// around its content.
func PanelFrameSize() (width, height int) {
	return styles.Panel.GetFrameSize()
}

// RenderPanel draws the detail panel frame around content, sized to the
// given outer width. A non-positive width leaves the panel unconstrained.
func RenderPanel(content string, width int) string {
	if width <= 0 {
		return styles.Panel.Render(content)
	}
	inner := width - styles.Panel.GetHorizontalBorderSize() - styles.Panel.GetHorizontalMargins()
	return styles.Panel.Width(max(inner, 1)).Render(content)
}
