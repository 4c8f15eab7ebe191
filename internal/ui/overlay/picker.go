package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabula-app/tabula/internal/domain"
)

// TemplateChosenMsg asks the app to instantiate a template into the current
// project.
type TemplateChosenMsg struct {
	TemplateID string
}

// TemplateDeletedMsg asks the app to delete a stored template.
type TemplateDeletedMsg struct {
	TemplateID string
}

// TemplatePicker lists the stored task templates for instantiation.
type TemplatePicker struct {
	templates []domain.Task
	cursor    int
	styles    *Styles
}

// NewTemplatePicker creates a picker over the given templates.
func NewTemplatePicker(templates []domain.Task) *TemplatePicker {
	return &TemplatePicker{
		templates: append([]domain.Task(nil), templates...),
		styles:    New(),
	}
}

// SetTemplates refreshes the list after a deletion.
func (p *TemplatePicker) SetTemplates(templates []domain.Task) {
	p.templates = append([]domain.Task(nil), templates...)
	if p.cursor >= len(p.templates) {
		p.cursor = len(p.templates) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Init returns the initial command
func (p *TemplatePicker) Init() tea.Cmd {
	return nil
}

// Update handles list navigation and selection.
func (p *TemplatePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "esc", "q":
		return p, func() tea.Msg { return CloseOverlayMsg{} }

	case "j", "down":
		if p.cursor < len(p.templates)-1 {
			p.cursor++
		}

	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}

	case "enter":
		if len(p.templates) > 0 {
			id := p.templates[p.cursor].ID
			return p, tea.Batch(
				func() tea.Msg { return TemplateChosenMsg{TemplateID: id} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}

	case "d":
		if len(p.templates) > 0 {
			id := p.templates[p.cursor].ID
			return p, func() tea.Msg { return TemplateDeletedMsg{TemplateID: id} }
		}
	}

	return p, nil
}

// View renders the template list with a subtask count per entry.
func (p *TemplatePicker) View() string {
	var b strings.Builder

	if len(p.templates) == 0 {
		b.WriteString(p.styles.Footer.Render("No templates yet. Press S on a task to save one."))
		b.WriteString("\n")
	}
	for i, tpl := range p.templates {
		style := p.styles.MenuItem
		marker := "  "
		if i == p.cursor {
			style = p.styles.MenuItemActive
			marker = "> "
		}
		line := marker + tpl.Title
		if n := len(tpl.Subtasks); n > 0 {
			line += fmt.Sprintf(" (%d subtasks)", n)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	hints := []string{
		p.styles.MenuKey.Render("Enter") + " " + p.styles.Footer.Render("Create task"),
		p.styles.MenuKey.Render("d") + " " + p.styles.Footer.Render("Delete"),
		p.styles.MenuKey.Render("Esc") + " " + p.styles.Footer.Render("Close"),
	}
	b.WriteString(p.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (p *TemplatePicker) Title() string {
	return "Templates"
}

// Size returns the overlay dimensions
func (p *TemplatePicker) Size() (width, height int) {
	h := 5 + len(p.templates)
	if h > 16 {
		h = 16
	}
	return 56, h
}

// Editing reports whether a text field has focus; the picker has none
func (p *TemplatePicker) Editing() bool {
	return false
}
