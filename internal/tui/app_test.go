package tui

import (
	"testing"

	"github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/tui/view"
)

func TestNewApp(t *testing.T) {
	app := New(nil, nil)

	if app.cfg == nil {
		t.Fatal("New(nil, nil) should fall back to the default config")
	}
	if app.logger == nil {
		t.Fatal("New(nil, nil) should fall back to a no-op logger")
	}
	if app.model.ActiveID() != phase.Identification {
		t.Errorf("initial phase = %s, want identification", app.model.ActiveID())
	}
}

func TestNewAppAppliesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.ShowTooling = false
	cfg.TUI.ShowHelp = true
	cfg.TUI.Icons = "ascii"
	cfg.TUI.MaxWidth = 90

	m := New(cfg, nil).model
	if m.ShowTooling() {
		t.Error("show_tooling not applied")
	}
	if !m.showHelp {
		t.Error("show_help not applied")
	}
	if m.icons != view.IconsASCII {
		t.Errorf("icons = %s, want ascii", m.icons)
	}
	if m.maxWidth != 90 {
		t.Errorf("maxWidth = %d, want 90", m.maxWidth)
	}
}

func TestInit(t *testing.T) {
	if cmd := NewModel(nil, nil).Init(); cmd != nil {
		t.Error("Init should not schedule any command")
	}
}
