package view

import (
	"github.com/Iron-Ham/irframe/internal/phase"
	"github.com/Iron-Ham/irframe/internal/tui/styles"
	"github.com/Iron-Ham/irframe/internal/util"
)

// RenderHeader renders the framework title bar across width columns.
func RenderHeader(width int, icons IconSet) string {
	title := styles.HeaderIcon.Render(icons.Glyph(phase.FrameworkIcon)) + phase.FrameworkTitle
	if width <= 0 {
		return styles.Header.Render(title)
	}
	title = util.TruncateANSI(title, width)
	return styles.Header.Width(width).Render(title)
}
