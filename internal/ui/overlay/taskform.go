package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabula-app/tabula/internal/domain"
)

// TaskSubmittedMsg is emitted when the task form is submitted.
// ID is empty when a new task is being created.
type TaskSubmittedMsg struct {
	ID          string
	Title       string
	Description string
	DueDate     string
	Priority    domain.Priority
}

// TaskForm is a form overlay for creating or editing a task
type TaskForm struct {
	id          string
	title       textinput.Model
	description textarea.Model
	dueDate     textinput.Model
	priority    domain.Priority
	focusIndex  int
	errs        map[int]string
	styles      *Styles
}

const (
	focusTitle = iota
	focusDescription
	focusDueDate
	focusPriority
	focusSubmit
	fieldCount
)

// NewTaskForm creates an empty form for a new task
func NewTaskForm() *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	ta := textarea.New()
	ta.Placeholder = "Description (optional)..."
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(5)

	dd := textinput.New()
	dd.Placeholder = domain.DateLayout
	dd.CharLimit = 10
	dd.Width = 14

	return &TaskForm{
		title:       ti,
		description: ta,
		dueDate:     dd,
		priority:    domain.PriorityMedium,
		focusIndex:  focusTitle,
		errs:        make(map[int]string),
		styles:      New(),
	}
}

// EditTaskForm creates a form pre-filled from an existing task
func EditTaskForm(task domain.Task) *TaskForm {
	f := NewTaskForm()
	f.id = task.ID
	f.title.SetValue(task.Title)
	f.description.SetValue(task.Description)
	f.dueDate.SetValue(task.DueDate)
	if task.Priority != "" {
		f.priority = task.Priority
	}
	return f
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.focusIndex = (f.focusIndex + 1) % fieldCount
			} else {
				f.focusIndex = (f.focusIndex - 1 + fieldCount) % fieldCount
			}
			f.syncFocus()
			return f, nil

		case "enter":
			if f.focusIndex == focusSubmit {
				return f, f.submit()
			}
			// Let the active field handle enter
		}

		if f.focusIndex == focusPriority {
			switch msg.String() {
			case "l":
				f.priority = domain.PriorityLow
				return f, nil
			case "m":
				f.priority = domain.PriorityMedium
				return f, nil
			case "h":
				f.priority = domain.PriorityHigh
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
		cmds = append(cmds, cmd)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
		cmds = append(cmds, cmd)
	case focusDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
		cmds = append(cmds, cmd)
	}

	return f, tea.Batch(cmds...)
}

func (f *TaskForm) syncFocus() {
	f.title.Blur()
	f.description.Blur()
	f.dueDate.Blur()

	switch f.focusIndex {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.description.Focus()
	case focusDueDate:
		f.dueDate.Focus()
	}
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	b.WriteString(f.label(focusTitle, "Title:"))
	b.WriteString("  ")
	b.WriteString(f.title.View())
	b.WriteString("\n")
	if e, ok := f.errs[focusTitle]; ok {
		b.WriteString(f.styles.FieldError.Render("  " + e))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(f.label(focusDescription, "Description:"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	b.WriteString(f.label(focusDueDate, "Due date:"))
	b.WriteString("  ")
	b.WriteString(f.dueDate.View())
	b.WriteString("\n")
	if e, ok := f.errs[focusDueDate]; ok {
		b.WriteString(f.styles.FieldError.Render("  " + e))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(f.label(focusPriority, "Priority:"))
	b.WriteString("  ")
	b.WriteString(f.renderPrioritySelector())
	b.WriteString("\n\n")

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	if f.id == "" {
		b.WriteString(submitStyle.Render("[ Create Task ]"))
	} else {
		b.WriteString(submitStyle.Render("[ Save Task ]"))
	}
	b.WriteString("\n\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.Render("Switch fields"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.Render("Submit"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (f *TaskForm) label(index int, text string) string {
	if f.focusIndex == index {
		return f.styles.LabelActive.Render(text)
	}
	return f.styles.Label.Render(text)
}

// renderPrioritySelector renders the priority selector with current selection
func (f *TaskForm) renderPrioritySelector() string {
	priorities := []struct {
		key string
		pri domain.Priority
	}{
		{"l", domain.PriorityLow},
		{"m", domain.PriorityMedium},
		{"h", domain.PriorityHigh},
	}

	var parts []string
	for _, p := range priorities {
		style := f.styles.MenuItem
		indicator := " "
		if p.pri == f.priority {
			style = f.styles.MenuItemActive
			indicator = "●"
		}

		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, p.key)))
	}

	return strings.Join(parts, " ")
}

// submit validates the form and emits a TaskSubmittedMsg, or records
// field errors and keeps the form open
func (f *TaskForm) submit() tea.Cmd {
	f.errs = make(map[int]string)

	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		f.errs[focusTitle] = "title is required"
	}

	due := strings.TrimSpace(f.dueDate.Value())
	if due != "" {
		if _, ok := domain.ParseDate(due); !ok {
			f.errs[focusDueDate] = "expected " + domain.DateLayout
		}
	}

	if len(f.errs) > 0 {
		return nil
	}

	msg := TaskSubmittedMsg{
		ID:          f.id,
		Title:       title,
		Description: strings.TrimSpace(f.description.Value()),
		DueDate:     domain.NormalizeDate(due),
		Priority:    f.priority,
	}

	return tea.Batch(
		func() tea.Msg { return msg },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (f *TaskForm) Title() string {
	if f.id == "" {
		return "Create Task"
	}
	return "Edit Task"
}

// Size returns the overlay dimensions
func (f *TaskForm) Size() (width, height int) {
	return 70, 24
}

// Editing reports whether a text field has focus
func (f *TaskForm) Editing() bool {
	return f.title.Focused() || f.description.Focused() || f.dueDate.Focused()
}
