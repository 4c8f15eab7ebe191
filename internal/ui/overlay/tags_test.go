package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula-app/tabula/internal/domain"
)

func TestTagEditorAddEmitsMessage(t *testing.T) {
	editor := NewTagEditor(domain.Task{ID: "task-1"})
	editor.input.SetValue("  urgent  ")

	_, cmd := editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	added, ok := cmd().(TagAddedMsg)
	require.True(t, ok)
	assert.Equal(t, "task-1", added.TaskID)
	assert.Equal(t, "urgent", added.Tag)
	assert.Empty(t, editor.input.Value(), "input cleared after add")
}

func TestTagEditorEmptyInputIsNoOp(t *testing.T) {
	editor := NewTagEditor(domain.Task{ID: "task-1"})

	_, cmd := editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestTagEditorRemoveSelected(t *testing.T) {
	editor := NewTagEditor(domain.Task{ID: "task-1", Tags: []string{"a", "b"}})

	m, _ := editor.Update(tea.KeyMsg{Type: tea.KeyDown})
	editor = m.(*TagEditor)

	_, cmd := editor.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)

	removed, ok := cmd().(TagRemovedMsg)
	require.True(t, ok)
	assert.Equal(t, "b", removed.Tag)
}

func TestTagEditorSetTagsClampsCursor(t *testing.T) {
	editor := NewTagEditor(domain.Task{ID: "task-1", Tags: []string{"a", "b", "c"}})
	editor.cursor = 2

	editor.SetTags([]string{"a"})
	assert.Equal(t, 0, editor.cursor)

	editor.SetTags(nil)
	assert.Equal(t, 0, editor.cursor)
}

func TestTagEditorDoesNotAliasTask(t *testing.T) {
	task := domain.Task{ID: "task-1", Tags: []string{"keep"}}
	editor := NewTagEditor(task)

	editor.SetTags([]string{"other"})
	assert.Equal(t, []string{"keep"}, task.Tags)
}

func TestTagEditorIsEditing(t *testing.T) {
	editor := NewTagEditor(domain.Task{ID: "task-1"})
	assert.True(t, editor.Editing())
	assert.Equal(t, "Tags", editor.Title())
}
