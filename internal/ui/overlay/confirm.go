package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	title    string
	message  string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult represents the result of a confirmation dialog
type ConfirmResult struct {
	Confirmed bool
}

// NewConfirmDialog creates a new confirmation dialog with the given title and message
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:    title,
		message:  message,
		styles:   New(),
		selected: false, // Default to No
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return c, confirmCmd(true)

		case "n", "N", "esc":
			return c, confirmCmd(false)

		case "enter":
			return c, confirmCmd(c.selected)

		case "left", "h":
			c.selected = false
			return c, nil

		case "right", "l":
			c.selected = true
			return c, nil
		}
	}

	return c, nil
}

func confirmCmd(confirmed bool) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			return SelectionMsg{
				Key:   map[bool]string{true: "yes", false: "no"}[confirmed],
				Value: ConfirmResult{Confirmed: confirmed},
			}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	b.WriteString(c.message)
	b.WriteString("\n\n")

	yes := c.styles.MenuItem.Render("[ Yes ]")
	no := c.styles.MenuItemActive.Render("[ No ]")
	if c.selected {
		yes = c.styles.MenuItemActive.Render("[ Yes ]")
		no = c.styles.MenuItem.Render("[ No ]")
	}
	b.WriteString(no + "  " + yes)
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("y/n") + " " + c.styles.Footer.Render("Choose"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Cancel"),
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	return 50, 9
}

// Editing reports whether a text field has focus; dialogs have none
func (c *ConfirmDialog) Editing() bool {
	return false
}
