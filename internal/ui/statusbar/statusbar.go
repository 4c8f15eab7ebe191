// Package statusbar renders the bottom status bar.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tabula-app/tabula/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	view   string
	extra  string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for the named view
func New(view, extra string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		view:   view,
		extra:  extra,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + sb.view + " ")

	hints := GetHints(sb.view)
	if sb.extra != "" {
		hints = sb.extra + "  " + hints
	}
	hintsRendered := sb.styles.StatusHint.Render(hints)

	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, hintsRendered)
	} else {
		content = badge
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
