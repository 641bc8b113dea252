// Package tui provides the terminal user interface for irframe.
package tui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/irframe/internal/config"
	"github.com/Iron-Ham/irframe/internal/logging"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
	"github.com/Iron-Ham/irframe/internal/tui/view"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	cfg     *config.Config
	logger  *logging.Logger
}

// New creates a new TUI application
func New(cfg *config.Config, logger *logging.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(cfg, logger),
		cfg:    cfg,
		logger: logger,
	}
}

// Run starts the TUI application and blocks until it exits
func (a *App) Run() error {
	opts := []tea.ProgramOption{}
	if a.cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Quit cleanly on termination so the terminal is restored
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		sig, ok := <-sigChan
		if !ok {
			return
		}
		a.logger.Info("signal received", "signal", sig.String())
		a.program.Send(tea.Quit())
	}()

	config.Watch(
		func(cfg *config.Config) { a.program.Send(configReloadedMsg{cfg: cfg}) },
		func(err error) { a.program.Send(configErrorMsg{err: err}) },
	)

	a.logger.Info("tui started", "theme", styles.GetActiveTheme().Name)
	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	if err != nil {
		a.logger.Error("tui exited with error", "error", err.Error())
		return fmt.Errorf("running tui: %w", err)
	}
	a.logger.Info("tui stopped")
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case configReloadedMsg:
		return m.handleConfigReload(msg.cfg)

	case configErrorMsg:
		m.logger.Warn("config reload failed", "error", msg.err.Error())
		return m.setNotice("config reload failed: "+msg.err.Error(), true)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeIsError = false
			m.layout()
		}
		return m, nil
	}

	return m, nil
}

// handleConfigReload applies a reloaded configuration. The selected phase
// and scroll position survive the reload.
func (m Model) handleConfigReload(cfg *config.Config) (tea.Model, tea.Cmd) {
	m.applyConfig(cfg)
	if err := styles.ApplyTheme(cfg.TUI.Theme); err != nil {
		m.logger.Warn("theme not applied", "theme", cfg.TUI.Theme, "error", err.Error())
		return m.setNotice(err.Error(), true)
	}
	m.logger.Info("config reloaded", "theme", cfg.TUI.Theme)
	return m.setNotice("config reloaded", false)
}

// setNotice shows text in the help bar and schedules it to clear.
func (m Model) setNotice(text string, isError bool) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeIsError = isError
	m.noticeSeq++
	m.layout()
	return m, expireNotice(m.noticeSeq)
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	width := m.contentWidth()
	return lipgloss.JoinVertical(lipgloss.Left,
		view.RenderHeader(width, m.icons),
		m.picker().Render(),
		view.RenderPanel(m.detail.View(), width),
		view.RenderHelp(m.helpState()),
	)
}
