// Package styles defines the shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Board
	Board              lipgloss.Style
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardActive   lipgloss.Style
	TaskID       lipgloss.Style
	TaskTitle    lipgloss.Style
	TaskMeta     lipgloss.Style
	DueSoon      lipgloss.Style
	Overdue      lipgloss.Style
	Tag          lipgloss.Style

	// Badges
	PriorityBadge func(priority string) lipgloss.Style

	// Daily overview
	SectionHeader lipgloss.Style
	ListRow       lipgloss.Style
	ListRowActive lipgloss.Style
	EmptyHint     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldError   lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Progress
	Progress lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Board: lipgloss.NewStyle().
			Background(Base),

		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		TaskID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Overlay1),

		DueSoon: lipgloss.NewStyle().
			Foreground(Peach),

		Overdue: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Tag: lipgloss.NewStyle().
			Foreground(Teal),

		PriorityBadge: func(priority string) lipgloss.Style {
			color, ok := PriorityColors[priority]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(color).
				Bold(true)
		},

		SectionHeader: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginTop(1),

		ListRow: lipgloss.NewStyle().
			Foreground(Text),

		ListRowActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		EmptyHint: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Subtext0),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Mantle).
			Bold(true),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		FieldError: lipgloss.NewStyle().
			Foreground(Red),

		ToastInfo: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Text).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			Background(Green).
			Foreground(Mantle).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			Background(Yellow).
			Foreground(Mantle).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Background(Red).
			Foreground(Mantle).
			Padding(0, 1),

		Progress: lipgloss.NewStyle().
			Foreground(Green),
	}
}
