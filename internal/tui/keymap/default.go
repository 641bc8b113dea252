package keymap

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/irframe/internal/phase"
)

// Help categories.
const (
	CategoryPhases = "Phases"
	CategoryScroll = "Scrolling"
	CategoryView   = "View"
)

// DefaultKeymap returns the phase viewer's key bindings.
func DefaultKeymap() *Keymap {
	km := &Keymap{
		Name:        "default",
		Description: "Default irframe key bindings",
	}

	for pos := 1; pos <= phase.Count; pos++ {
		b := mustBind(strconv.Itoa(pos), CmdSelectPhase, fmt.Sprintf("Select phase %d", pos), CategoryPhases)
		b.Position = pos
		km.Bindings = append(km.Bindings, b)
	}

	km.Bindings = append(km.Bindings,
		mustBind("tab", CmdNextPhase, "Next phase", CategoryPhases),
		mustBind("l", CmdNextPhase, "Next phase", CategoryPhases),
		mustBind("right", CmdNextPhase, "Next phase", CategoryPhases),
		mustBind("shift+tab", CmdPrevPhase, "Previous phase", CategoryPhases),
		mustBind("h", CmdPrevPhase, "Previous phase", CategoryPhases),
		mustBind("left", CmdPrevPhase, "Previous phase", CategoryPhases),
		mustBind("g", CmdFirstPhase, "First phase", CategoryPhases),
		mustBind("home", CmdFirstPhase, "First phase", CategoryPhases),
		mustBind("G", CmdLastPhase, "Last phase", CategoryPhases),
		mustBind("end", CmdLastPhase, "Last phase", CategoryPhases),

		mustBind("j", CmdScrollDown, "Scroll down", CategoryScroll),
		mustBind("down", CmdScrollDown, "Scroll down", CategoryScroll),
		mustBind("k", CmdScrollUp, "Scroll up", CategoryScroll),
		mustBind("up", CmdScrollUp, "Scroll up", CategoryScroll),
		mustBind("pgdown", CmdScrollPageDown, "Page down", CategoryScroll),
		mustBind("ctrl+d", CmdScrollPageDown, "Page down", CategoryScroll),
		mustBind("pgup", CmdScrollPageUp, "Page up", CategoryScroll),
		mustBind("ctrl+u", CmdScrollPageUp, "Page up", CategoryScroll),

		mustBind("t", CmdToggleTooling, "Toggle resources & tools", CategoryView),
		mustBind("?", CmdToggleHelp, "Toggle help", CategoryView),
		mustBind("q", CmdQuit, "Quit", CategoryView),
		mustBind("ctrl+c", CmdQuit, "Quit", CategoryView),
	)

	return km
}

// mustBind builds a binding from a key spec. Specs are literals in this
// file, so a parse failure is a programming error.
func mustBind(spec string, cmd Command, desc, category string) KeyBinding {
	keyType, r, mods, err := ParseKeySpec(spec)
	if err != nil {
		panic(err)
	}
	return KeyBinding{
		KeyType:     keyType,
		Rune:        r,
		Modifiers:   mods,
		Command:     cmd,
		Description: desc,
		Category:    category,
	}
}
