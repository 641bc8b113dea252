package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/tui/keymap"
)

// handleKeypress dispatches a key through the keymap. Unbound keys are
// ignored.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	binding, ok := m.keymap.Lookup(msg)
	if !ok {
		return m, nil
	}

	switch binding.Command {
	case keymap.CmdQuit:
		m.quitting = true
		m.logger.Info("quit requested")
		return m, tea.Quit

	case keymap.CmdSelectPhase:
		ids := phase.IDs()
		if binding.Position >= 1 && binding.Position <= len(ids) {
			m.selectPhase(ids[binding.Position-1], "key")
		}
	case keymap.CmdNextPhase:
		m.selectPhase(m.selector.ActiveID().Next(), "key")
	case keymap.CmdPrevPhase:
		m.selectPhase(m.selector.ActiveID().Prev(), "key")
	case keymap.CmdFirstPhase:
		ids := phase.IDs()
		m.selectPhase(ids[0], "key")
	case keymap.CmdLastPhase:
		ids := phase.IDs()
		m.selectPhase(ids[len(ids)-1], "key")

	case keymap.CmdScrollDown:
		m.detail.LineDown(1)
	case keymap.CmdScrollUp:
		m.detail.LineUp(1)
	case keymap.CmdScrollPageDown:
		m.detail.ViewDown()
	case keymap.CmdScrollPageUp:
		m.detail.ViewUp()

	case keymap.CmdToggleTooling:
		m.showTooling = !m.showTooling
		m.logger.Debug("tooling toggled", "visible", m.showTooling)
		m.refreshDetail()
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		// The help bar height changed.
		m.layout()
	}

	return m, nil
}

// handleMouse selects a phase on a left click over the picker and scrolls
// the detail panel on wheel events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.detail.LineUp(WheelScrollLines)
	case tea.MouseButtonWheelDown:
		m.detail.LineDown(WheelScrollLines)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		top, bottom := m.pickerRows()
		if msg.Y < top || msg.Y >= bottom {
			return m, nil
		}
		if id, ok := m.picker().HitTest(msg.X); ok {
			m.selectPhase(id, "mouse")
		}
	}
	return m, nil
}
