package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula-app/tabula/internal/domain"
)

func TestNewTaskForm(t *testing.T) {
	form := NewTaskForm()
	require.NotNil(t, form)
	assert.Equal(t, domain.PriorityMedium, form.priority)
	assert.Equal(t, focusTitle, form.focusIndex)
	assert.Equal(t, "Create Task", form.Title())
	assert.True(t, form.Editing())
}

func TestEditTaskFormPrefills(t *testing.T) {
	task := domain.Task{
		ID:          "task-1",
		Title:       "Write release notes",
		Description: "cover the storage changes",
		DueDate:     "2026-09-01",
		Priority:    domain.PriorityHigh,
	}

	form := EditTaskForm(task)
	assert.Equal(t, "Write release notes", form.title.Value())
	assert.Equal(t, "cover the storage changes", form.description.Value())
	assert.Equal(t, "2026-09-01", form.dueDate.Value())
	assert.Equal(t, domain.PriorityHigh, form.priority)
	assert.Equal(t, "Edit Task", form.Title())
}

func TestTaskFormEscapeCloses(t *testing.T) {
	form := NewTaskForm()

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}

func TestTaskFormTabNavigation(t *testing.T) {
	form := NewTaskForm()

	order := []int{focusDescription, focusDueDate, focusPriority, focusSubmit, focusTitle}
	for _, want := range order {
		m, _ := form.Update(tea.KeyMsg{Type: tea.KeyTab})
		form = m.(*TaskForm)
		assert.Equal(t, want, form.focusIndex)
	}
}

func TestTaskFormPrioritySelection(t *testing.T) {
	form := NewTaskForm()
	form.focusIndex = focusPriority
	form.syncFocus()

	m, _ := form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	form = m.(*TaskForm)
	assert.Equal(t, domain.PriorityHigh, form.priority)

	m, _ = form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	form = m.(*TaskForm)
	assert.Equal(t, domain.PriorityLow, form.priority)
}

func TestTaskFormSubmit(t *testing.T) {
	form := NewTaskForm()
	form.title.SetValue("  Ship the installer  ")
	form.dueDate.SetValue("2026-09-15")

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msgs := batchToSlice(cmd())
	require.Len(t, msgs, 2)

	submitted, ok := msgs[0].(TaskSubmittedMsg)
	require.True(t, ok)
	assert.Empty(t, submitted.ID)
	assert.Equal(t, "Ship the installer", submitted.Title)
	assert.Equal(t, "2026-09-15", submitted.DueDate)
	assert.Equal(t, domain.PriorityMedium, submitted.Priority)

	_, ok = msgs[1].(CloseOverlayMsg)
	assert.True(t, ok)
}

func TestTaskFormSubmitCarriesEditedID(t *testing.T) {
	form := EditTaskForm(domain.Task{ID: "task-7", Title: "Old title"})
	form.title.SetValue("New title")

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msgs := batchToSlice(cmd())
	submitted, ok := msgs[0].(TaskSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "task-7", submitted.ID)
	assert.Equal(t, "New title", submitted.Title)
}

func TestTaskFormSubmitWithoutTitle(t *testing.T) {
	form := NewTaskForm()

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Contains(t, form.errs, focusTitle)
	assert.Contains(t, form.View(), "title is required")
}

func TestTaskFormSubmitRejectsBadDate(t *testing.T) {
	form := NewTaskForm()
	form.title.SetValue("Valid title")
	form.dueDate.SetValue("next tuesday")

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Contains(t, form.errs, focusDueDate)
}

func TestTaskFormEditingTracksFocus(t *testing.T) {
	form := NewTaskForm()
	assert.True(t, form.Editing())

	form.focusIndex = focusPriority
	form.syncFocus()
	assert.False(t, form.Editing())

	form.focusIndex = focusDueDate
	form.syncFocus()
	assert.True(t, form.Editing())
}

func batchToSlice(msg tea.Msg) []tea.Msg {
	if msg == nil {
		return nil
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		var msgs []tea.Msg
		for _, cmd := range m {
			if cmd != nil {
				msgs = append(msgs, cmd())
			}
		}
		return msgs
	default:
		return []tea.Msg{msg}
	}
}
