package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabula-app/tabula/internal/domain"
)

// SubtaskToggledMsg asks the app to flip the completed flag of one subtask.
type SubtaskToggledMsg struct {
	TaskID    string
	SubtaskID string
}

// SubtaskAddedMsg asks the app to append a new subtask to a task.
type SubtaskAddedMsg struct {
	TaskID string
	Title  string
}

// SubtaskEditor shows one task's checklist. Tab switches between the list,
// where subtasks are toggled, and the input, where new ones are typed.
type SubtaskEditor struct {
	taskID   string
	subtasks []domain.Subtask
	cursor   int
	input    textinput.Model
	styles   *Styles
}

// NewSubtaskEditor creates a checklist editor over the given task. The input
// starts focused when the checklist is empty.
func NewSubtaskEditor(task domain.Task) *SubtaskEditor {
	ti := textinput.New()
	ti.Prompt = "+ "
	ti.Placeholder = "new subtask..."
	ti.CharLimit = 120
	ti.Width = 44

	e := &SubtaskEditor{
		taskID:   task.ID,
		subtasks: append([]domain.Subtask(nil), task.Subtasks...),
		input:    ti,
		styles:   New(),
	}
	if len(e.subtasks) == 0 {
		e.input.Focus()
	}
	return e
}

// SetSubtasks refreshes the checklist after the app applied a change.
func (e *SubtaskEditor) SetSubtasks(subtasks []domain.Subtask) {
	e.subtasks = append([]domain.Subtask(nil), subtasks...)
	if e.cursor >= len(e.subtasks) {
		e.cursor = len(e.subtasks) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

// Init returns the initial command
func (e *SubtaskEditor) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles checklist keys.
func (e *SubtaskEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, cmd
	}

	switch key.String() {
	case "esc":
		return e, func() tea.Msg { return CloseOverlayMsg{} }

	case "tab":
		if e.input.Focused() {
			e.input.Blur()
		} else {
			e.input.Focus()
		}
		return e, nil
	}

	if e.input.Focused() {
		if key.String() == "enter" {
			title := strings.TrimSpace(e.input.Value())
			if title == "" {
				return e, nil
			}
			e.input.SetValue("")
			id := e.taskID
			return e, func() tea.Msg { return SubtaskAddedMsg{TaskID: id, Title: title} }
		}
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, cmd
	}

	switch key.String() {
	case "j", "down":
		if e.cursor < len(e.subtasks)-1 {
			e.cursor++
		}

	case "k", "up":
		if e.cursor > 0 {
			e.cursor--
		}

	case " ", "enter", "x":
		if len(e.subtasks) > 0 {
			id, sub := e.taskID, e.subtasks[e.cursor].ID
			return e, func() tea.Msg { return SubtaskToggledMsg{TaskID: id, SubtaskID: sub} }
		}
	}

	return e, nil
}

// View renders the checklist with the input underneath.
func (e *SubtaskEditor) View() string {
	var b strings.Builder

	if len(e.subtasks) == 0 {
		b.WriteString(e.styles.Footer.Render("No subtasks yet"))
		b.WriteString("\n")
	}
	for i, sub := range e.subtasks {
		box := "[ ]"
		if sub.Completed {
			box = "[x]"
		}
		style := e.styles.MenuItem
		marker := "  "
		if i == e.cursor && !e.input.Focused() {
			style = e.styles.MenuItemActive
			marker = "> "
		}
		b.WriteString(style.Render(marker + box + " " + sub.Title))
		b.WriteString("\n")
	}

	b.WriteString(e.styles.Separator.Render(strings.Repeat("─", 48)))
	b.WriteString("\n")
	b.WriteString(e.input.View())
	b.WriteString("\n")

	hints := []string{
		e.styles.MenuKey.Render("Space") + " " + e.styles.Footer.Render("Toggle"),
		e.styles.MenuKey.Render("Tab") + " " + e.styles.Footer.Render("List/input"),
		e.styles.MenuKey.Render("Esc") + " " + e.styles.Footer.Render("Close"),
	}
	b.WriteString(e.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (e *SubtaskEditor) Title() string {
	return "Subtasks"
}

// Size returns the overlay dimensions
func (e *SubtaskEditor) Size() (width, height int) {
	h := 7 + len(e.subtasks)
	if h > 18 {
		h = 18
	}
	return 54, h
}

// Editing reports whether the subtask input has focus
func (e *SubtaskEditor) Editing() bool {
	return e.input.Focused()
}
