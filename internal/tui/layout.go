package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/tui/view"
)

const (
	// MinDetailHeight is the fewest rows the detail viewport is given, even
	// when the terminal is too short to fit the whole frame.
	MinDetailHeight = 3

	// WheelScrollLines is how many lines a single mouse wheel notch scrolls.
	WheelScrollLines = 3
)

// contentWidth returns the width available to the frame, honoring the
// configured maximum.
func (m Model) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m Model) picker() view.Picker {
	return view.Picker{
		Active: m.selector.ActiveID(),
		Icons:  m.icons,
		Width:  m.contentWidth(),
	}
}

func (m Model) helpState() view.HelpBarState {
	return view.HelpBarState{
		Keymap:        m.keymap,
		ShowFull:      m.showHelp,
		ShowTooling:   m.showTooling,
		Notice:        m.notice,
		NoticeIsError: m.noticeIsError,
		Width:         m.contentWidth(),
	}
}

// headerHeight returns the rows the header occupies, margins included.
func (m Model) headerHeight() int {
	return lipgloss.Height(view.RenderHeader(m.contentWidth(), m.icons))
}

// pickerRows returns the first and one-past-last screen rows of the picker.
func (m Model) pickerRows() (top, bottom int) {
	top = m.headerHeight()
	return top, top + m.picker().Height()
}

// detailHeight returns the rows left for the detail viewport once the
// header, picker, help bar and panel frame are accounted for.
func (m Model) detailHeight() int {
	_, frameH := view.PanelFrameSize()
	used := m.headerHeight() + m.picker().Height() + lipgloss.Height(view.RenderHelp(m.helpState())) + frameH
	return max(m.height-used, MinDetailHeight)
}

// detailWidth returns the columns inside the detail panel frame.
func (m Model) detailWidth() int {
	frameW, _ := view.PanelFrameSize()
	return max(m.contentWidth()-frameW, 1)
}

// layout resizes the detail viewport to the current window and re-renders
// its content.
func (m *Model) layout() {
	m.detail.Width = m.detailWidth()
	m.detail.Height = m.detailHeight()
	m.refreshDetail()
}

// refreshDetail re-renders the active phase into the viewport. The scroll
// offset is kept within the new content.
func (m *Model) refreshDetail() {
	d := view.Detail{
		Record:      m.selector.Active(),
		Tooling:     phase.Tooling(),
		ShowTooling: m.showTooling,
		Icons:       m.icons,
		Width:       m.detail.Width,
	}
	m.detail.SetContent(d.Render())
}
