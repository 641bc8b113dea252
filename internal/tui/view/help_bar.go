package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/irframe/internal/tui/keymap"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
	"github.com/Iron-Ham/irframe/internal/util"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// Keymap supplies the bindings listed in full help.
	Keymap *keymap.Keymap

	// ShowFull expands the bar into one line per key category.
	ShowFull bool

	// ShowTooling reflects whether the tooling blocks are visible.
	ShowTooling bool

	// Notice is a transient message, e.g. after a config reload.
	Notice string

	// NoticeIsError renders Notice as an error.
	NoticeIsError bool

	// Width truncates each line. 0 means unconstrained.
	Width int
}

// RenderHelp renders the help bar.
func RenderHelp(state HelpBarState) string {
	var lines []string
	if state.Notice != "" {
		style := styles.WarningMsg
		if state.NoticeIsError {
			style = styles.ErrorMsg
		}
		lines = append(lines, style.Render(state.Notice))
	}

	if state.ShowFull && state.Keymap != nil {
		lines = append(lines, renderFullHelp(state.Keymap)...)
	} else {
		lines = append(lines, renderShortHelp(state))
	}

	if state.Width > 0 {
		for i, l := range lines {
			lines[i] = util.TruncateANSI(l, state.Width)
		}
	}
	return styles.HelpBar.Render(strings.Join(lines, "\n"))
}

func renderShortHelp(state HelpBarState) string {
	toolsLabel := " show tools"
	if state.ShowTooling {
		toolsLabel = " hide tools"
	}
	keys := []string{
		styles.HelpKey.Render("[1-5]") + " select",
		styles.HelpKey.Render("[tab/←→]") + " switch",
		styles.HelpKey.Render("[j/k]") + " scroll",
		styles.HelpKey.Render("[t]") + toolsLabel,
		styles.HelpKey.Render("[?]") + " help",
		styles.HelpKey.Render("[q]") + " quit",
	}
	return strings.Join(keys, "  ")
}

// renderFullHelp lists every command once per category with all of its keys.
func renderFullHelp(km *keymap.Keymap) []string {
	byCategory := km.BindingsByCategory()

	var lines []string
	for _, cat := range km.Categories() {
		var entries []string
		seen := make(map[keymap.Command]bool)

		for _, b := range byCategory[cat] {
			if seen[b.Command] {
				continue
			}
			seen[b.Command] = true

			desc := strings.ToLower(b.Description)
			if b.Position > 0 {
				desc = "select phase"
			}
			entries = append(entries, styles.HelpKey.Render("["+keysFor(km, b.Command)+"]")+" "+styles.HelpDesc.Render(desc))
		}

		label := lipgloss.NewStyle().Bold(true).Render(cat + ":")
		lines = append(lines, label+" "+strings.Join(entries, "  "))
	}
	return lines
}

// keysFor joins the keys bound to cmd, e.g. "tab/l/→".
func keysFor(km *keymap.Keymap, cmd keymap.Command) string {
	var keys []string
	for _, b := range km.BindingsForCommand(cmd) {
		keys = append(keys, b.String())
	}
	return strings.Join(keys, "/")
}
