package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
	"github.com/Iron-Ham/irframe/internal/util"
)

// pickerGap is the number of blank columns between picker buttons.
const pickerGap = 1

// Picker renders the row of phase buttons, one per phase in registry order.
type Picker struct {
	// Active is the highlighted phase.
	Active phase.ID
	// Icons selects the glyph set.
	Icons IconSet
	// Width is the available width. 0 means unconstrained.
	Width int
}

// labelWidth returns the widest title a button may show, or 0 when titles
// need not be truncated.
func (p Picker) labelWidth() int {
	if p.Width <= 0 {
		return 0
	}
	frame := styles.PickerInactive.GetHorizontalFrameSize()
	perButton := (p.Width - pickerGap*(phase.Count-1)) / phase.Count
	return max(perButton-frame, 1)
}

// compact reports whether Width is too narrow for even one title column per
// button. Compact buttons drop the title and padding and show only the glyph.
func (p Picker) compact() bool {
	if p.Width <= 0 {
		return false
	}
	frame := styles.PickerInactive.GetHorizontalFrameSize()
	perButton := (p.Width - pickerGap*(phase.Count-1)) / phase.Count
	return perButton-frame < 1
}

// gap returns the spacing between buttons. Compact rows that cannot afford
// the gaps butt the buttons together.
func (p Picker) gap() int {
	if !p.compact() {
		return pickerGap
	}
	button := styles.PickerInactive.GetHorizontalBorderSize() + 1
	if p.Width < phase.Count*button+pickerGap*(phase.Count-1) {
		return 0
	}
	return pickerGap
}

// buttons renders each phase's button in registry order.
func (p Picker) buttons() []string {
	compact := p.compact()
	limit := p.labelWidth()
	records := phase.All()
	out := make([]string, 0, len(records))

	for _, r := range records {
		style := styles.PickerInactive
		if r.ID == p.Active {
			style = styles.PickerActive
		}

		glyph := p.Icons.Glyph(r.Icon)
		if compact {
			out = append(out, style.Padding(0).Render(glyph))
			continue
		}

		title := r.Title
		if limit > 0 {
			title = util.TruncateANSI(title, limit)
		}
		out = append(out, style.Render(lipgloss.JoinVertical(lipgloss.Center, glyph, title)))
	}
	return out
}

// Render returns the picker row, never wider than Width when Width is set.
func (p Picker) Render() string {
	btns := p.buttons()
	gap := strings.Repeat(" ", p.gap())

	parts := make([]string, 0, len(btns)*2-1)
	for i, b := range btns {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if p.Width > 0 && lipgloss.Width(row) > p.Width {
		row = lipgloss.NewStyle().MaxWidth(p.Width).Render(row)
	}
	return row
}

// Height returns the number of rows the picker occupies.
func (p Picker) Height() int {
	return lipgloss.Height(p.Render())
}

// HitTest returns the phase whose button covers column x of the picker row.
// Gaps between buttons miss, as do columns outside the rendered row.
func (p Picker) HitTest(x int) (phase.ID, bool) {
	if x < 0 {
		return "", false
	}
	ids := phase.IDs()
	gap := p.gap()
	start := 0
	for i, b := range p.buttons() {
		end := start + lipgloss.Width(b)
		if x >= start && x < end && (p.Width <= 0 || x < p.Width) {
			return ids[i], true
		}
		start = end + gap
	}
	return "", false
}
