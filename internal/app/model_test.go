package app

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabula-app/tabula/internal/bus"
	"github.com/tabula-app/tabula/internal/config"
	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/store"
	"github.com/tabula-app/tabula/internal/ui/overlay"
	"github.com/tabula-app/tabula/internal/undo"
)

// Helper to create a test model over a throwaway file store
func newTestModel(t *testing.T) Model {
	t.Helper()

	kv, err := store.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accessor := store.NewAccessor(kv, logger)
	b := bus.New()
	log := undo.New(accessor, b, logger)

	m := New(config.DefaultConfig(), accessor, b, log, logger)
	m.width = 80
	m.height = 24
	return m
}

// drainSignals delivers pending bus signals through the update loop
func drainSignals(m Model) Model {
	for {
		select {
		case sig := <-m.signalCh:
			result, _ := m.Update(signalMsg{signal: sig})
			m = result.(Model)
		default:
			return m
		}
	}
}

func createTask(t *testing.T, m Model, title string) Model {
	t.Helper()
	result, _ := m.Update(overlay.TaskSubmittedMsg{
		Title:    title,
		Priority: domain.PriorityMedium,
	})
	return drainSignals(result.(Model))
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelCreatesDefaultProject(t *testing.T) {
	m := newTestModel(t)

	if len(m.projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(m.projects))
	}
	if m.projects[0].Title != "Inbox" {
		t.Errorf("expected default project Inbox, got %q", m.projects[0].Title)
	}
	if m.currentProject == "" {
		t.Error("expected current project to be set")
	}
}

func TestCreateTaskPersists(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Write docs")

	if len(m.tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(m.tasks))
	}
	if m.tasks[0].Title != "Write docs" {
		t.Errorf("unexpected title %q", m.tasks[0].Title)
	}
	if m.tasks[0].Status != domain.StatusTodo {
		t.Errorf("new task should start in todo, got %q", m.tasks[0].Status)
	}

	stored := m.accessor.LoadTasks(m.currentProject)
	if len(stored) != 1 {
		t.Fatalf("expected task persisted, got %d", len(stored))
	}
}

func TestMoveTaskAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Ship it")

	result, _ := m.Update(keyMsg(']'))
	m = drainSignals(result.(Model))

	if m.tasks[0].Status != domain.StatusInProgress {
		t.Fatalf("expected in-progress after move, got %q", m.tasks[0].Status)
	}

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))

	if m.tasks[0].Status != domain.StatusTodo {
		t.Errorf("expected todo after undo, got %q", m.tasks[0].Status)
	}
}

func TestMoveTaskClampsAtEdges(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Edge case")

	// Already in the first column; moving left is a no-op
	result, _ := m.Update(keyMsg('['))
	m = drainSignals(result.(Model))

	if m.tasks[0].Status != domain.StatusTodo {
		t.Errorf("expected todo after clamped move, got %q", m.tasks[0].Status)
	}
}

func TestDeleteWithConfirmAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Doomed task")

	result, _ := m.Update(keyMsg('d'))
	m = result.(Model)
	if m.overlayStack.IsEmpty() {
		t.Fatal("expected confirm dialog")
	}
	if m.pending == nil {
		t.Fatal("expected pending delete")
	}

	result, _ = m.Update(overlay.SelectionMsg{
		Key:   "yes",
		Value: overlay.ConfirmResult{Confirmed: true},
	})
	m = drainSignals(result.(Model))

	if len(m.tasks) != 0 {
		t.Fatalf("expected task deleted, got %d", len(m.tasks))
	}

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))

	if len(m.tasks) != 1 || m.tasks[0].Title != "Doomed task" {
		t.Errorf("expected task restored by undo, got %v", m.tasks)
	}
}

func TestDeleteDeclinedKeepsTask(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Survivor")

	result, _ := m.Update(keyMsg('d'))
	m = result.(Model)

	result, _ = m.Update(overlay.SelectionMsg{
		Key:   "no",
		Value: overlay.ConfirmResult{Confirmed: false},
	})
	m = drainSignals(result.(Model))

	if len(m.tasks) != 1 {
		t.Errorf("expected task kept, got %d", len(m.tasks))
	}
	if m.pending != nil {
		t.Error("expected pending delete cleared")
	}
}

func TestEditTaskAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Old title")

	result, _ := m.Update(overlay.TaskSubmittedMsg{
		ID:       m.tasks[0].ID,
		Title:    "New title",
		Priority: domain.PriorityHigh,
	})
	m = drainSignals(result.(Model))

	if m.tasks[0].Title != "New title" {
		t.Fatalf("expected edit applied, got %q", m.tasks[0].Title)
	}

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))

	if m.tasks[0].Title != "Old title" {
		t.Errorf("expected title restored, got %q", m.tasks[0].Title)
	}
	if m.tasks[0].Priority != domain.PriorityMedium {
		t.Errorf("expected priority restored, got %q", m.tasks[0].Priority)
	}
}

func TestUndoWithEmptyHistory(t *testing.T) {
	m := newTestModel(t)

	before := len(m.tasks)
	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))

	if len(m.tasks) != before {
		t.Error("undo with empty history should not touch tasks")
	}
	if len(m.toasts) == 0 {
		t.Fatal("expected a toast")
	}
	if m.toasts[len(m.toasts)-1].Message != "Nothing to undo" {
		t.Errorf("unexpected toast %q", m.toasts[len(m.toasts)-1].Message)
	}
}

func TestUndoSuppressedWhileEditing(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Apply polish")

	result, _ := m.Update(keyMsg(']'))
	m = drainSignals(result.(Model))

	// Open the task form; its title field takes focus
	result, _ = m.Update(keyMsg('a'))
	m = result.(Model)
	if !m.overlayStack.Editing() {
		t.Fatal("expected form to be editing")
	}

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))

	if m.tasks[0].Status != domain.StatusInProgress {
		t.Errorf("undo should be suppressed while editing, status %q", m.tasks[0].Status)
	}
}

func TestUndoAvailableUnderConfirmDialog(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "First")

	result, _ := m.Update(keyMsg(']'))
	m = drainSignals(result.(Model))

	// Confirm dialogs have no text fields, so the chord stays live
	result, _ = m.Update(keyMsg('d'))
	m = result.(Model)

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))

	if m.tasks[0].Status != domain.StatusTodo {
		t.Errorf("expected undo under dialog, status %q", m.tasks[0].Status)
	}
}

func TestTabTogglesView(t *testing.T) {
	m := newTestModel(t)

	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = result.(Model)
	if m.viewMode != ViewModeDaily {
		t.Fatal("expected daily view after tab")
	}

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = result.(Model)
	if m.viewMode != ViewModeBoard {
		t.Fatal("expected board view after second tab")
	}
}

func TestSearchFiltersBoard(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Alpha release")
	m = createTask(t, m, "Beta cleanup")

	result, _ := m.Update(overlay.SearchMsg{Query: "alpha"})
	m = result.(Model)

	total := 0
	for _, col := range m.buildColumns() {
		total += len(col.Tasks)
	}
	if total != 1 {
		t.Errorf("expected 1 matching task, got %d", total)
	}

	// Clearing the filter brings everything back
	result, _ = m.Update(overlay.SearchMsg{Query: ""})
	m = result.(Model)
	total = 0
	for _, col := range m.buildColumns() {
		total += len(col.Tasks)
	}
	if total != 2 {
		t.Errorf("expected 2 tasks after clear, got %d", total)
	}
}

func TestSortTogglePerColumn(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Low item")
	m = createTask(t, m, "High item")

	m.tasks[0].Priority = domain.PriorityLow
	m.tasks[1].Priority = domain.PriorityHigh

	result, _ := m.Update(keyMsg(','))
	m = result.(Model)

	cols := m.buildColumns()
	if len(cols[0].Tasks) != 2 {
		t.Fatalf("expected 2 tasks in first column, got %d", len(cols[0].Tasks))
	}
	if cols[0].Tasks[0].Priority != domain.PriorityHigh {
		t.Errorf("expected high priority first, got %q", cols[0].Tasks[0].Priority)
	}
}

func TestSaveTemplateKeepsBoardState(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Release checklist")

	m.tasks[0].Subtasks = []domain.Subtask{{ID: "s1", Title: "tag build", Completed: true}}
	if err := m.accessor.SaveTasks(m.currentProject, m.tasks); err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}

	result, _ := m.Update(keyMsg('S'))
	m = drainSignals(result.(Model))

	if !m.tasks[0].Subtasks[0].Completed {
		t.Error("saving a template must not un-complete the live task's subtasks")
	}
	stored := m.accessor.LoadTasks(m.currentProject)
	if !stored[0].Subtasks[0].Completed {
		t.Error("stored task corrupted by template save")
	}
	if len(m.templates.List()) != 1 {
		t.Fatal("expected one stored template")
	}
	if m.templates.List()[0].Subtasks[0].Completed {
		t.Error("template itself should start with unchecked subtasks")
	}
}

func TestTagEditingWithDuplicateToast(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Tagged task")
	taskID := m.tasks[0].ID

	result, _ := m.Update(keyMsg('t'))
	m = result.(Model)
	if _, ok := m.overlayStack.Current().(*overlay.TagEditor); !ok {
		t.Fatal("expected tag editor on t")
	}

	result, _ = m.Update(overlay.TagAddedMsg{TaskID: taskID, Tag: "urgent"})
	m = drainSignals(result.(Model))
	if len(m.tasks[0].Tags) != 1 {
		t.Fatalf("expected 1 tag, got %v", m.tasks[0].Tags)
	}

	result, _ = m.Update(overlay.TagAddedMsg{TaskID: taskID, Tag: "urgent"})
	m = drainSignals(result.(Model))

	if len(m.tasks[0].Tags) != 1 {
		t.Errorf("duplicate tag must be rejected, got %v", m.tasks[0].Tags)
	}
	if len(m.toasts) == 0 || m.toasts[len(m.toasts)-1].Message != "Tag already exists" {
		t.Error("expected duplicate-tag toast")
	}

	result, _ = m.Update(overlay.TagRemovedMsg{TaskID: taskID, Tag: "urgent"})
	m = drainSignals(result.(Model))
	if len(m.tasks[0].Tags) != 0 {
		t.Errorf("expected tag removed, got %v", m.tasks[0].Tags)
	}
}

func TestTagAddAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Plain task")
	taskID := m.tasks[0].ID

	result, _ := m.Update(overlay.TagAddedMsg{TaskID: taskID, Tag: "later"})
	m = drainSignals(result.(Model))

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))

	if len(m.tasks[0].Tags) != 0 {
		t.Errorf("undo should restore the empty tag set, got %v", m.tasks[0].Tags)
	}
}

func TestSubtaskAddToggleAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Checklist task")
	taskID := m.tasks[0].ID

	result, _ := m.Update(keyMsg('s'))
	m = result.(Model)
	if _, ok := m.overlayStack.Current().(*overlay.SubtaskEditor); !ok {
		t.Fatal("expected subtask editor on s")
	}

	result, _ = m.Update(overlay.SubtaskAddedMsg{TaskID: taskID, Title: "step one"})
	m = drainSignals(result.(Model))
	if len(m.tasks[0].Subtasks) != 1 {
		t.Fatalf("expected 1 subtask, got %d", len(m.tasks[0].Subtasks))
	}

	subID := m.tasks[0].Subtasks[0].ID
	result, _ = m.Update(overlay.SubtaskToggledMsg{TaskID: taskID, SubtaskID: subID})
	m = drainSignals(result.(Model))
	if !m.tasks[0].Subtasks[0].Completed {
		t.Fatal("expected subtask toggled on")
	}

	// The editor's input holds focus, which suppresses the undo chord;
	// close it first.
	result, _ = m.Update(overlay.CloseOverlayMsg{})
	m = result.(Model)

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))
	if m.tasks[0].Subtasks[0].Completed {
		t.Error("undo should restore the unchecked subtask")
	}
}

func TestTemplateInstantiateAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Weekly review")

	result, _ := m.Update(keyMsg('S'))
	m = drainSignals(result.(Model))
	if len(m.templates.List()) != 1 {
		t.Fatal("expected stored template")
	}
	tplID := m.templates.List()[0].ID

	result, _ = m.Update(keyMsg('T'))
	m = result.(Model)
	if _, ok := m.overlayStack.Current().(*overlay.TemplatePicker); !ok {
		t.Fatal("expected template picker on T")
	}

	result, _ = m.Update(overlay.TemplateChosenMsg{TemplateID: tplID})
	m = drainSignals(result.(Model))
	if len(m.tasks) != 2 {
		t.Fatalf("expected instantiated task, got %d tasks", len(m.tasks))
	}
	if m.tasks[0].ID == m.tasks[1].ID {
		t.Error("instantiated task must get a fresh id")
	}

	result, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = drainSignals(result.(Model))
	if len(m.tasks) != 1 {
		t.Errorf("undo should remove the instantiated task, got %d", len(m.tasks))
	}
}

func TestSearchTagTokenFilters(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Fix login")
	m = createTask(t, m, "Update styles")

	result, _ := m.Update(overlay.TagAddedMsg{TaskID: m.tasks[0].ID, Tag: "auth"})
	m = drainSignals(result.(Model))

	result, _ = m.Update(overlay.SearchMsg{Query: "#auth"})
	m = result.(Model)

	total := 0
	for _, col := range m.buildColumns() {
		total += len(col.Tasks)
	}
	if total != 1 {
		t.Errorf("expected 1 task matching the tag token, got %d", total)
	}
}

func TestStartupAcceptsPendingInvitations(t *testing.T) {
	kv, err := store.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accessor := store.NewAccessor(kv, logger)

	// Seed an invited member plus the matching invitation for the local
	// profile, the way another instance's invite leaves the store.
	if err := accessor.SaveProfile(domain.Profile{Username: "ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := accessor.SaveMembers("p1", []domain.Member{
		{Email: "ana@example.com", Status: domain.MemberInvited},
	}); err != nil {
		t.Fatalf("SaveMembers: %v", err)
	}
	if err := accessor.SaveInvitations("ana@example.com", []domain.Invitation{
		{ProjectID: "p1", ProjectTitle: "Shared board"},
	}); err != nil {
		t.Fatalf("SaveInvitations: %v", err)
	}

	b := bus.New()
	New(config.DefaultConfig(), accessor, b, undo.New(accessor, b, logger), logger)

	if got := accessor.Invitations("ana@example.com"); len(got) != 0 {
		t.Errorf("expected invitations consumed, got %d", len(got))
	}
	members := accessor.Members("p1")
	if len(members) != 1 || members[0].Status != domain.MemberActive {
		t.Errorf("expected active member, got %+v", members)
	}
	if members[0].Name != "ana" {
		t.Errorf("expected member named after the profile, got %q", members[0].Name)
	}
}

func TestExternalStoreChangeReloads(t *testing.T) {
	m := newTestModel(t)
	m = createTask(t, m, "Visible everywhere")

	// Simulate a second process rewriting the task list
	tasks := m.accessor.LoadTasks(m.currentProject)
	tasks[0].Title = "Renamed elsewhere"
	if err := m.accessor.SaveTasks(m.currentProject, tasks); err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}

	result, _ := m.Update(signalMsg{signal: bus.StoreChanged{Key: store.TasksKey(m.currentProject)}})
	m = result.(Model)

	if m.tasks[0].Title != "Renamed elsewhere" {
		t.Errorf("expected reload on store change, got %q", m.tasks[0].Title)
	}
}
