package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabula-app/tabula/internal/domain"
)

// InviteSubmittedMsg is emitted when a member invitation is submitted
type InviteSubmittedMsg struct {
	Email string
}

// InviteForm is a small form overlay for inviting a project member
type InviteForm struct {
	email  textinput.Model
	err    string
	styles *Styles
}

// NewInviteForm creates a new invite form
func NewInviteForm() *InviteForm {
	ti := textinput.New()
	ti.Placeholder = "name@example.com"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 40

	return &InviteForm{
		email:  ti,
		styles: New(),
	}
}

// Init initializes the overlay
func (f *InviteForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *InviteForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter", "ctrl+s":
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	f.email, cmd = f.email.Update(msg)
	return f, cmd
}

func (f *InviteForm) submit() tea.Cmd {
	email := strings.TrimSpace(f.email.Value())
	if err := domain.ValidateEmail(email); err != nil {
		f.err = "invalid email address"
		return nil
	}
	f.err = ""

	return tea.Batch(
		func() tea.Msg { return InviteSubmittedMsg{Email: email} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// View renders the form
func (f *InviteForm) View() string {
	var b strings.Builder

	b.WriteString(f.styles.LabelActive.Render("Email:"))
	b.WriteString("  ")
	b.WriteString(f.email.View())
	b.WriteString("\n")
	if f.err != "" {
		b.WriteString(f.styles.FieldError.Render("  " + f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	hints := []string{
		f.styles.MenuKey.Render("Enter") + " " + f.styles.Footer.Render("Invite"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (f *InviteForm) Title() string {
	return "Invite Member"
}

// Size returns the overlay dimensions
func (f *InviteForm) Size() (width, height int) {
	return 56, 8
}

// Editing reports whether the email field has focus
func (f *InviteForm) Editing() bool {
	return f.email.Focused()
}
