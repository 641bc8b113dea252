package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/testutil"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send feeds msg to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// sizedModel returns a default model that has received a window size.
func sizedModel(t *testing.T, width, height int) Model {
	t.Helper()
	m, _ := send(t, NewModel(nil, nil), tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func TestNewModelStartsOnIdentification(t *testing.T) {
	m := NewModel(nil, nil)

	if m.ActiveID() != phase.Identification {
		t.Errorf("initial phase = %s, want %s", m.ActiveID(), phase.Identification)
	}
	if !m.ShowTooling() {
		t.Error("tooling should be visible by default")
	}
	if m.View() != "Loading..." {
		t.Errorf("View before window size = %q", m.View())
	}
}

func TestNumberKeysSelectPhase(t *testing.T) {
	m := sizedModel(t, 100, 40)
	ids := phase.IDs()

	for i, id := range ids {
		m, _ = send(t, m, runeKey(rune('1'+i)))
		if m.ActiveID() != id {
			t.Errorf("key %d selected %s, want %s", i+1, m.ActiveID(), id)
		}
	}
}

func TestReselectingActivePhaseIsNoop(t *testing.T) {
	testutil.PlainColors(t)
	m := sizedModel(t, 100, 40)

	m, _ = send(t, m, runeKey('2'))
	before := m.View()
	m, _ = send(t, m, runeKey('2'))

	if m.ActiveID() != phase.Containment {
		t.Fatalf("active = %s, want containment", m.ActiveID())
	}
	if m.View() != before {
		t.Error("re-selecting the active phase changed the view")
	}
}

func TestSelectPhaseUpdatesDetail(t *testing.T) {
	testutil.PlainColors(t)
	m := sizedModel(t, 100, 60)

	out := m.View()
	if !strings.Contains(out, "Attack Identification") {
		t.Error("initial view missing the identification title")
	}
	if !strings.Contains(out, "Collect system and network logs") {
		t.Error("initial view missing the first identification action")
	}

	m, _ = send(t, m, runeKey('4'))
	out = m.View()

	if m.ActivePhase().Title != "Recovery" {
		t.Fatalf("active title = %q, want Recovery", m.ActivePhase().Title)
	}
	if strings.Contains(out, "Collect system and network logs") {
		t.Error("identification actions still shown after selecting recovery")
	}

	actions := []string{
		"Restore from clean backups",
		"Verify system integrity",
		"Monitor for persistence",
		"Resume normal operations",
	}
	last := -1
	for _, a := range actions {
		idx := strings.Index(out, a)
		if idx < 0 {
			t.Errorf("view missing action %q", a)
			continue
		}
		if idx < last {
			t.Errorf("action %q out of order", a)
		}
		last = idx
	}
}

func TestPhaseNavigationWraps(t *testing.T) {
	m := sizedModel(t, 100, 40)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveID() != phase.PostIncident {
		t.Errorf("shift+tab from first = %s, want post-incident", m.ActiveID())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveID() != phase.Identification {
		t.Errorf("tab from last = %s, want identification", m.ActiveID())
	}

	m, _ = send(t, m, runeKey('G'))
	if m.ActiveID() != phase.PostIncident {
		t.Errorf("G = %s, want post-incident", m.ActiveID())
	}
	m, _ = send(t, m, runeKey('g'))
	if m.ActiveID() != phase.Identification {
		t.Errorf("g = %s, want identification", m.ActiveID())
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	m := sizedModel(t, 100, 40)
	m, cmd := send(t, m, runeKey('z'))

	if cmd != nil {
		t.Error("unbound key returned a command")
	}
	if m.ActiveID() != phase.Identification {
		t.Errorf("unbound key changed the phase to %s", m.ActiveID())
	}
}

func TestScrollResetsOnPhaseChange(t *testing.T) {
	m := sizedModel(t, 100, 18)

	m, _ = send(t, m, runeKey('j'))
	if m.detail.YOffset != 1 {
		t.Fatalf("YOffset after j = %d, want 1", m.detail.YOffset)
	}

	m, _ = send(t, m, runeKey('k'))
	if m.detail.YOffset != 0 {
		t.Fatalf("YOffset after k = %d, want 0", m.detail.YOffset)
	}

	m, _ = send(t, m, runeKey('j'))
	m, _ = send(t, m, runeKey('3'))
	if m.detail.YOffset != 0 {
		t.Errorf("YOffset after phase change = %d, want 0", m.detail.YOffset)
	}
}

func TestToggleTooling(t *testing.T) {
	testutil.PlainColors(t)
	m := sizedModel(t, 100, 60)

	if !strings.Contains(m.View(), "Resources & Tools") {
		t.Fatal("tooling should be visible initially")
	}

	m, _ = send(t, m, runeKey('t'))
	if m.ShowTooling() {
		t.Error("t should hide tooling")
	}
	if strings.Contains(m.View(), "Resources & Tools") {
		t.Error("tooling still rendered after hiding")
	}
	if m.ActiveID() != phase.Identification {
		t.Error("toggling tooling changed the selection")
	}

	m, _ = send(t, m, runeKey('t'))
	if !strings.Contains(m.View(), "Resources & Tools") {
		t.Error("tooling not rendered after showing again")
	}
}

func TestToggleHelpShrinksDetail(t *testing.T) {
	testutil.PlainColors(t)
	m := sizedModel(t, 100, 40)
	short := m.detail.Height

	m, _ = send(t, m, runeKey('?'))
	if !m.showHelp {
		t.Fatal("? should show full help")
	}
	if m.detail.Height >= short {
		t.Errorf("detail height %d should shrink below %d with full help", m.detail.Height, short)
	}
	if !strings.Contains(m.View(), "Phases:") {
		t.Error("full help not rendered")
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m := sizedModel(t, 100, 40)
		m, cmd := send(t, m, msg)

		if !m.Quitting() {
			t.Errorf("%s should quit", msg)
		}
		if cmd == nil {
			t.Fatalf("%s returned no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s command did not produce QuitMsg", msg)
		}
		if m.View() != "" {
			t.Error("view should be empty after quitting")
		}
	}
}

// pickerCell returns the screen cell of the first occurrence of label in
// the rendered view.
func pickerCell(t *testing.T, view, label string) (x, y int) {
	t.Helper()
	for row, line := range strings.Split(view, "\n") {
		if idx := strings.Index(line, label); idx >= 0 {
			return lipgloss.Width(line[:idx]), row
		}
	}
	t.Fatalf("label %q not found in view", label)
	return 0, 0
}

func TestMouseClickSelectsPhase(t *testing.T) {
	testutil.PlainColors(t)
	m := sizedModel(t, 100, 40)

	x, y := pickerCell(t, m.View(), "Recovery")
	m, _ = send(t, m, tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	if m.ActiveID() != phase.Recovery {
		t.Errorf("click on Recovery selected %s", m.ActiveID())
	}

	// Releases and clicks outside the picker are ignored.
	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.ActiveID() != phase.Recovery {
		t.Errorf("ignored mouse events changed the phase to %s", m.ActiveID())
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	m := sizedModel(t, 100, 18)

	m, _ = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.detail.YOffset != WheelScrollLines {
		t.Errorf("YOffset after wheel down = %d, want %d", m.detail.YOffset, WheelScrollLines)
	}
	m, _ = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.detail.YOffset != 0 {
		t.Errorf("YOffset after wheel up = %d, want 0", m.detail.YOffset)
	}
}

func TestMouseDisabled(t *testing.T) {
	testutil.PlainColors(t)
	cfg := config.Default()
	cfg.TUI.Mouse = false
	m, _ := send(t, NewModel(cfg, nil), tea.WindowSizeMsg{Width: 100, Height: 40})

	x, y := pickerCell(t, m.View(), "Recovery")
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.ActiveID() != phase.Identification {
		t.Error("mouse click handled with mouse disabled")
	}
}

func TestMaxWidth(t *testing.T) {
	testutil.PlainColors(t)
	cfg := config.Default()
	cfg.TUI.MaxWidth = 80
	m, _ := send(t, NewModel(cfg, nil), tea.WindowSizeMsg{Width: 200, Height: 40})

	for i, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 80 {
			t.Errorf("line %d is %d columns wide, want <= 80", i, w)
		}
	}
}

func TestConfigReload(t *testing.T) {
	testutil.PlainColors(t)
	t.Cleanup(func() { styles.SetActiveTheme(styles.ThemeDefault) })

	m := sizedModel(t, 100, 60)
	m, _ = send(t, m, runeKey('3'))

	cfg := config.Default()
	cfg.TUI.Theme = "nord"
	cfg.TUI.ShowTooling = false
	cfg.TUI.Icons = "ascii"

	m, cmd := send(t, m, configReloadedMsg{cfg: cfg})
	if cmd == nil {
		t.Error("reload should schedule the notice to expire")
	}
	if styles.GetActiveTheme().Name != styles.ThemeNord {
		t.Errorf("active theme = %s, want nord", styles.GetActiveTheme().Name)
	}
	if m.ActiveID() != phase.Resolution {
		t.Errorf("reload changed the phase to %s", m.ActiveID())
	}
	if m.ShowTooling() {
		t.Error("reload should apply show_tooling")
	}
	if !strings.Contains(m.View(), "config reloaded") {
		t.Error("reload notice not shown")
	}

	m, _ = send(t, m, noticeExpiredMsg{seq: m.noticeSeq})
	if strings.Contains(m.View(), "config reloaded") {
		t.Error("notice still shown after expiry")
	}
}

func TestConfigReloadUnknownTheme(t *testing.T) {
	testutil.PlainColors(t)
	t.Cleanup(func() { styles.SetActiveTheme(styles.ThemeDefault) })

	cfg := config.Default()
	cfg.TUI.Theme = "no-such-theme"

	m, _ := send(t, sizedModel(t, 100, 40), configReloadedMsg{cfg: cfg})
	if !m.noticeIsError {
		t.Error("unknown theme should produce an error notice")
	}
	if styles.GetActiveTheme().Name != styles.ThemeDefault {
		t.Errorf("active theme = %s, want default", styles.GetActiveTheme().Name)
	}
}

func TestConfigErrorKeepsState(t *testing.T) {
	testutil.PlainColors(t)
	m := sizedModel(t, 100, 40)
	m, _ = send(t, m, runeKey('5'))

	m, _ = send(t, m, configErrorMsg{err: errors.New("tui.icons: bad value")})
	if m.ActiveID() != phase.PostIncident {
		t.Errorf("config error changed the phase to %s", m.ActiveID())
	}
	if !strings.Contains(m.View(), "config reload failed") {
		t.Error("config error notice not shown")
	}

	stale := m.noticeSeq - 1
	m, _ = send(t, m, noticeExpiredMsg{seq: stale})
	if m.notice == "" {
		t.Error("stale expiry cleared the current notice")
	}
}
