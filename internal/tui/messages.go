package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/irframe/internal/config"
)

// noticeTTL is how long a help bar notice stays visible.
const noticeTTL = 4 * time.Second

// configReloadedMsg carries a configuration reloaded after the config file
// changed on disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// configErrorMsg reports a config file change that failed to load.
type configErrorMsg struct {
	err error
}

// noticeExpiredMsg clears the notice it was scheduled for.
type noticeExpiredMsg struct {
	seq int
}

// expireNotice returns a command that clears notice seq after noticeTTL.
func expireNotice(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
