// Package keymap provides the declarative key bindings of the phase viewer
// and their lookup from tea.KeyMsg values.
package keymap

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	// Phase selection
	CmdSelectPhase Command = "select_phase" // 1-5 keys, see KeyBinding.Position
	CmdNextPhase   Command = "next_phase"
	CmdPrevPhase   Command = "prev_phase"
	CmdFirstPhase  Command = "first_phase"
	CmdLastPhase   Command = "last_phase"

	// Detail panel scrolling
	CmdScrollDown     Command = "scroll_down"
	CmdScrollUp       Command = "scroll_up"
	CmdScrollPageDown Command = "scroll_page_down"
	CmdScrollPageUp   Command = "scroll_page_up"

	// View toggles
	CmdToggleTooling Command = "toggle_tooling"
	CmdToggleHelp    Command = "toggle_help"

	// Exit
	CmdQuit Command = "quit"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var sb strings.Builder
	if m&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if m&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if m&ModShift != 0 {
		sb.WriteString("shift+")
	}
	return sb.String()
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding.
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Position is the 1-based phase position for CmdSelectPhase.
	Position int

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		switch kb.KeyType {
		case tea.KeyRight:
			return prefix + "→"
		case tea.KeyLeft:
			return prefix + "←"
		case tea.KeyUp:
			return prefix + "↑"
		case tea.KeyDown:
			return prefix + "↓"
		}
		return prefix + kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return prefix + "space"
	}
	return prefix + string(kb.Rune)
}

// Keymap is an ordered set of key bindings. Order matters only for help
// display; lookups return the first match.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	Bindings []KeyBinding
}

// Lookup returns the binding matching msg.
func (km *Keymap) Lookup(msg tea.KeyMsg) (KeyBinding, bool) {
	for _, binding := range km.Bindings {
		if binding.Matches(msg) {
			return binding, true
		}
	}
	return KeyBinding{}, false
}

// BindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) BindingsForCommand(cmd Command) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// Categories returns the distinct categories in binding order.
func (km *Keymap) Categories() []string {
	seen := make(map[string]bool)
	var categories []string

	for _, binding := range km.Bindings {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// BindingsByCategory returns bindings grouped by category.
func (km *Keymap) BindingsByCategory() map[string][]KeyBinding {
	result := make(map[string][]KeyBinding)
	for _, binding := range km.Bindings {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		result[cat] = append(result[cat], binding)
	}
	return result
}

// ParseKeySpec parses a key specification string into KeyType, Rune, and Modifiers.
// Examples: "ctrl+c", "shift+tab", "j", "home", "right".
func ParseKeySpec(spec string) (keyType tea.KeyType, r rune, mods Modifier, err error) {
	remaining := spec
	for {
		var found bool
		for prefix, mod := range map[string]Modifier{"ctrl+": ModCtrl, "alt+": ModAlt, "shift+": ModShift} {
			if len(remaining) > len(prefix) && strings.HasPrefix(remaining, prefix) {
				mods |= mod
				remaining = remaining[len(prefix):]
				found = true
			}
		}
		if !found {
			break
		}
	}

	switch remaining {
	case "enter":
		return tea.KeyEnter, 0, mods, nil
	case "tab":
		if mods&ModShift != 0 {
			return tea.KeyShiftTab, 0, mods &^ ModShift, nil
		}
		return tea.KeyTab, 0, mods, nil
	case "esc", "escape":
		return tea.KeyEsc, 0, mods, nil
	case "space":
		return tea.KeyRunes, ' ', mods, nil
	case "up":
		return tea.KeyUp, 0, mods, nil
	case "down":
		return tea.KeyDown, 0, mods, nil
	case "left":
		return tea.KeyLeft, 0, mods, nil
	case "right":
		return tea.KeyRight, 0, mods, nil
	case "home":
		return tea.KeyHome, 0, mods, nil
	case "end":
		return tea.KeyEnd, 0, mods, nil
	case "pgup", "pageup":
		return tea.KeyPgUp, 0, mods, nil
	case "pgdown", "pagedown":
		return tea.KeyPgDown, 0, mods, nil
	}

	// ctrl+letter maps to tea.KeyCtrlA..tea.KeyCtrlZ
	if mods&ModCtrl != 0 && len(remaining) == 1 {
		ch := remaining[0]
		if ch >= 'a' && ch <= 'z' {
			return tea.KeyCtrlA + tea.KeyType(ch-'a'), 0, mods &^ ModCtrl, nil
		}
	}

	if runes := []rune(remaining); len(runes) == 1 {
		return tea.KeyRunes, runes[0], mods, nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized key spec: %q", spec)
}
