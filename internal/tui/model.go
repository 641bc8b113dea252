package tui

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/logging"
	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/tui/keymap"
	"github.com/Iron-Ham/irframe/internal/tui/view"
)

// Model holds the TUI application state
type Model struct {
	selector phase.Selector
	keymap   *keymap.Keymap
	detail   viewport.Model
	logger   *logging.Logger

	// UI state
	width       int
	height      int
	ready       bool
	quitting    bool
	showHelp    bool
	showTooling bool
	mouse       bool
	icons       view.IconSet
	maxWidth    int

	// Transient help bar notice; noticeSeq invalidates stale expiry ticks
	notice        string
	noticeIsError bool
	noticeSeq     int
}

// NewModel creates a model showing the first phase, configured from cfg.
// A nil cfg uses defaults and a nil logger discards output.
func NewModel(cfg *config.Config, logger *logging.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	m := Model{
		selector: phase.NewSelector(),
		keymap:   keymap.DefaultKeymap(),
		detail:   viewport.New(0, 0),
		logger:   logger.WithComponent("tui"),
		showHelp: cfg.TUI.ShowHelp,
	}
	m.applyConfig(cfg)
	return m
}

// applyConfig copies the display settings out of cfg. The selection is
// never touched.
func (m *Model) applyConfig(cfg *config.Config) {
	m.showTooling = cfg.TUI.ShowTooling
	m.mouse = cfg.TUI.Mouse
	m.icons = view.ParseIconSet(cfg.TUI.Icons)
	m.maxWidth = cfg.TUI.MaxWidth
}

// ActivePhase returns the record of the phase on display.
func (m Model) ActivePhase() phase.Record {
	return m.selector.Active()
}

// ActiveID returns the identifier of the phase on display.
func (m Model) ActiveID() phase.ID {
	return m.selector.ActiveID()
}

// ShowTooling reports whether the tooling blocks are visible.
func (m Model) ShowTooling() bool {
	return m.showTooling
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// selectPhase makes id active. Re-selecting the active phase and unknown
// IDs change nothing. Returns whether the selection changed.
func (m *Model) selectPhase(id phase.ID, source string) bool {
	if !id.Valid() || m.selector.IsActive(id) {
		return false
	}
	m.selector.Select(id)
	m.detail.GotoTop()
	m.refreshDetail()
	m.logger.WithPhase(id.String()).Debug("phase selected", "source", source)
	return true
}
