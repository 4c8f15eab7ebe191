package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabula-app/tabula/internal/domain"
)

// TagAddedMsg asks the app to add a tag to a task. Uniqueness is enforced by
// the task itself; a rejected add surfaces as a toast, not in the overlay.
type TagAddedMsg struct {
	TaskID string
	Tag    string
}

// TagRemovedMsg asks the app to remove a tag from a task.
type TagRemovedMsg struct {
	TaskID string
	Tag    string
}

// TagEditor edits the tag set of one task in place. The input stays focused
// for typing new tags; up/down select an existing tag for removal.
type TagEditor struct {
	taskID string
	tags   []string
	cursor int
	input  textinput.Model
	styles *Styles
}

// NewTagEditor creates a tag editor over the given task.
func NewTagEditor(task domain.Task) *TagEditor {
	ti := textinput.New()
	ti.Prompt = "+ "
	ti.Placeholder = "new tag..."
	ti.CharLimit = 40
	ti.Width = 36
	ti.Focus()

	return &TagEditor{
		taskID: task.ID,
		tags:   append([]string(nil), task.Tags...),
		input:  ti,
		styles: New(),
	}
}

// SetTags refreshes the displayed tag list after the app applied a change.
func (e *TagEditor) SetTags(tags []string) {
	e.tags = append([]string(nil), tags...)
	if e.cursor >= len(e.tags) {
		e.cursor = len(e.tags) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

// Init starts the input cursor blinking.
func (e *TagEditor) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles tag editing keys.
func (e *TagEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return e, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			tag := strings.TrimSpace(e.input.Value())
			if tag == "" {
				return e, nil
			}
			e.input.SetValue("")
			id := e.taskID
			return e, func() tea.Msg { return TagAddedMsg{TaskID: id, Tag: tag} }

		case "up":
			if e.cursor > 0 {
				e.cursor--
			}
			return e, nil

		case "down":
			if e.cursor < len(e.tags)-1 {
				e.cursor++
			}
			return e, nil

		case "ctrl+d":
			if len(e.tags) == 0 {
				return e, nil
			}
			id, tag := e.taskID, e.tags[e.cursor]
			return e, func() tea.Msg { return TagRemovedMsg{TaskID: id, Tag: tag} }
		}
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// View renders the input followed by the current tag set.
func (e *TagEditor) View() string {
	var b strings.Builder

	b.WriteString(e.input.View())
	b.WriteString("\n")
	b.WriteString(e.styles.Separator.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	if len(e.tags) == 0 {
		b.WriteString(e.styles.Footer.Render("No tags yet"))
		b.WriteString("\n")
	}
	for i, tag := range e.tags {
		style := e.styles.MenuItem
		marker := "  "
		if i == e.cursor {
			style = e.styles.MenuItemActive
			marker = "> "
		}
		b.WriteString(style.Render(marker + "#" + tag))
		b.WriteString("\n")
	}

	hints := []string{
		e.styles.MenuKey.Render("Enter") + " " + e.styles.Footer.Render("Add"),
		e.styles.MenuKey.Render("Ctrl+D") + " " + e.styles.Footer.Render("Remove selected"),
		e.styles.MenuKey.Render("Esc") + " " + e.styles.Footer.Render("Close"),
	}
	b.WriteString(e.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (e *TagEditor) Title() string {
	return "Tags"
}

// Size returns the overlay dimensions
func (e *TagEditor) Size() (width, height int) {
	h := 7 + len(e.tags)
	if h > 18 {
		h = 18
	}
	return 46, h
}

// Editing reports whether the tag input has focus
func (e *TagEditor) Editing() bool {
	return e.input.Focused()
}
