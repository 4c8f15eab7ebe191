// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tabula-app/tabula/internal/bus"
	"github.com/tabula-app/tabula/internal/config"
	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/services/daily"
	"github.com/tabula-app/tabula/internal/services/members"
	"github.com/tabula-app/tabula/internal/services/navigation"
	"github.com/tabula-app/tabula/internal/services/templates"
	"github.com/tabula-app/tabula/internal/store"
	"github.com/tabula-app/tabula/internal/types"
	"github.com/tabula-app/tabula/internal/ui/board"
	dailyui "github.com/tabula-app/tabula/internal/ui/daily"
	"github.com/tabula-app/tabula/internal/ui/overlay"
	"github.com/tabula-app/tabula/internal/ui/statusbar"
	"github.com/tabula-app/tabula/internal/ui/styles"
	"github.com/tabula-app/tabula/internal/ui/toast"
	"github.com/tabula-app/tabula/internal/undo"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// ViewMode represents the current view mode
type ViewMode int

const (
	ViewModeBoard ViewMode = iota
	ViewModeDaily
)

// signalMsg wraps a bus signal for delivery through the TEA loop
type signalMsg struct {
	signal bus.Signal
}

// toastTickMsg drives toast expiry
type toastTickMsg time.Time

// dailyTickMsg is the staleness safety net for the daily view
type dailyTickMsg time.Time

// pendingDelete holds the task awaiting delete confirmation
type pendingDelete struct {
	task domain.Task
}

// Model is the main application state
type Model struct {
	// Core data
	projects       []domain.Project
	currentProject string
	tasks          []domain.Task

	// Services
	accessor  *store.Accessor
	signals   *bus.Bus
	undoLog   *undo.Log
	daily     *daily.Service
	members   *members.Service
	templates *templates.Service
	nav       *navigation.Service

	// UI state
	overlayStack *overlay.Stack
	viewMode     ViewMode
	dailyView    *dailyui.View
	toasts       []Toast
	pending      *pendingDelete
	filter       *domain.Filter
	sortSpec     domain.Sort

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger

	// Bus plumbing
	signalCh chan bus.Signal
	sub      *bus.Subscription

	now func() time.Time
}

// New creates a new application model wired to the given services
func New(cfg *config.Config, accessor *store.Accessor, b *bus.Bus, undoLog *undo.Log, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	s := styles.New()
	m := Model{
		accessor:     accessor,
		signals:      b,
		undoLog:      undoLog,
		daily:        daily.NewService(accessor, time.Now),
		members:      members.NewService(accessor, logger, time.Now),
		templates:    templates.NewService(accessor, logger, time.Now),
		nav:          navigation.NewService(),
		overlayStack: overlay.NewStack(),
		viewMode:     ViewModeBoard,
		filter:       domain.NewFilter(),
		dailyView:    dailyui.NewView(s),
		toasts:       []Toast{},
		styles:       s,
		config:       cfg,
		logger:       logger,
		signalCh:     make(chan bus.Signal, 64),
		now:          time.Now,
	}

	m.loadProjects()
	m.acceptPendingInvitations()
	m.reloadTasks()

	// Bridge bus signals into the TEA loop. The buffered channel keeps
	// Publish from blocking; a full buffer drops the signal, and the
	// periodic refresh covers the loss.
	ch := m.signalCh
	m.sub = b.Subscribe(func(sig bus.Signal) {
		select {
		case ch <- sig:
		default:
		}
	})

	return m
}

func (m *Model) loadProjects() {
	m.projects = m.accessor.Projects()
	if len(m.projects) == 0 {
		inbox := domain.Project{
			ID:    domain.NewID("project"),
			Title: "Inbox",
		}
		m.projects = []domain.Project{inbox}
		if err := m.accessor.SaveProjects(m.projects); err != nil {
			m.logger.Error("failed to save default project", "error", err)
		}
	}
	m.currentProject = m.projects[0].ID
}

func (m *Model) reloadTasks() {
	m.tasks = m.accessor.LoadTasks(m.currentProject)
}

// acceptPendingInvitations consumes invitations addressed to the local
// profile at startup, activating the matching member entries.
func (m *Model) acceptPendingInvitations() {
	profile := m.accessor.Profile()
	if profile.Email == "" {
		return
	}
	for _, inv := range m.accessor.Invitations(profile.Email) {
		if err := m.members.Accept(profile.Email, profile.Username, inv.ProjectID); err != nil {
			m.logger.Warn("could not accept invitation",
				"project", inv.ProjectID, "error", err)
			continue
		}
		m.logger.Info("accepted project invitation", "project", inv.ProjectID)
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.waitForSignal(),
		toastTick(),
		dailyTick(m.config.Daily.RefreshIntervalSec),
	)
}

// waitForSignal blocks on the bus bridge channel
func (m Model) waitForSignal() tea.Cmd {
	ch := m.signalCh
	return func() tea.Msg {
		return signalMsg{signal: <-ch}
	}
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func dailyTick(intervalSec int) tea.Cmd {
	if intervalSec <= 0 {
		intervalSec = 60
	}
	return tea.Tick(time.Duration(intervalSec)*time.Second, func(t time.Time) tea.Msg {
		return dailyTickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dailyView.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case signalMsg:
		return m.handleSignal(msg.signal)

	case toastTickMsg:
		m.toasts = types.PruneToasts(m.toasts, m.now())
		return m, toastTick()

	case dailyTickMsg:
		// Staleness safety net. Publishing rather than recomputing in
		// place keeps every refresh path going through the same signal.
		m.signals.Publish(bus.DailyRefresh{})
		return m, dailyTick(m.config.Daily.RefreshIntervalSec)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmitted(msg)

	case overlay.InviteSubmittedMsg:
		return m.handleInviteSubmitted(msg)

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.TagAddedMsg:
		return m.handleTagAdded(msg)

	case overlay.TagRemovedMsg:
		return m.handleTagRemoved(msg)

	case overlay.SubtaskAddedMsg:
		return m.handleSubtaskAdded(msg)

	case overlay.SubtaskToggledMsg:
		return m.handleSubtaskToggled(msg)

	case overlay.TemplateChosenMsg:
		return m.handleTemplateChosen(msg)

	case overlay.TemplateDeletedMsg:
		return m.handleTemplateDeleted(msg)

	case overlay.SearchMsg:
		m.filter.SetQuery(msg.Query)
		if search, ok := m.overlayStack.Current().(*overlay.SearchBar); ok {
			search.SetMatchCount(len(m.filter.Apply(m.tasks)))
		}
		return m, nil
	}

	return m, nil
}

// handleSignal reacts to cross-component notifications
func (m Model) handleSignal(sig bus.Signal) (tea.Model, tea.Cmd) {
	switch sig := sig.(type) {
	case bus.TasksChanged:
		if sig.ProjectID == m.currentProject {
			m.reloadTasks()
		}

	case bus.DueDateChanged:
		if sig.ProjectID == m.currentProject {
			m.reloadTasks()
		}
		m.dailyView.SetBuckets(m.daily.Buckets())

	case bus.DailyRefresh:
		m.dailyView.SetBuckets(m.daily.Buckets())

	case bus.BoardInvalidated:
		if sig.ProjectID == m.currentProject {
			m.reloadTasks()
		}
		m.dailyView.SetBuckets(m.daily.Buckets())

	case bus.StoreChanged:
		// Another process touched the store. Reload everything that
		// could be affected by the key.
		m.logger.Debug("external store change", "key", sig.Key)
		m.loadProjects()
		m.reloadTasks()
		m.dailyView.SetBuckets(m.daily.Buckets())
	}

	return m, m.waitForSignal()
}

// handleOverlayKey routes keys to the overlay stack, keeping a few
// globals alive
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "ctrl+z":
		// Undo stays available under non-editing overlays but never
		// steals the chord from a focused text field.
		if !m.overlayStack.Editing() {
			return m.performUndo()
		}
	}

	return m, m.overlayStack.Update(msg)
}

// handleKey processes keyboard input with no overlay open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()

	case "ctrl+l":
		return m, tea.ClearScreen

	case "ctrl+z":
		return m.performUndo()

	case "tab":
		if m.viewMode == ViewModeBoard {
			m.viewMode = ViewModeDaily
			m.dailyView.SetBuckets(m.daily.Buckets())
		} else {
			m.viewMode = ViewModeBoard
		}
		return m, nil
	}

	if m.viewMode == ViewModeDaily {
		return m.handleDailyKey(msg)
	}
	return m.handleBoardKey(msg)
}

func (m Model) handleDailyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.signals.Publish(bus.DailyRefresh{})
	}
	return m, nil
}

// buildColumns converts tasks into board columns, applying filter and sort
func (m Model) buildColumns() []board.Column {
	filtered := m.filter.Apply(m.tasks)
	columns := board.BuildColumns(filtered)
	for i := range columns {
		columns[i].Tasks = m.sortSpec.Apply(columns[i].Tasks)
	}
	return columns
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()

	switch msg.String() {
	case "j", "down":
		m.nav.MoveVertical(columns, 1)
		return m, nil

	case "k", "up":
		m.nav.MoveVertical(columns, -1)
		return m, nil

	case "h", "left":
		m.nav.MoveHorizontal(columns, -1)
		return m, nil

	case "l", "right":
		m.nav.MoveHorizontal(columns, 1)
		return m, nil

	case "[":
		return m.moveCurrentTask(columns, -1)

	case "]":
		return m.moveCurrentTask(columns, 1)

	case "a":
		return m, m.overlayStack.Push(overlay.NewTaskForm())

	case "e":
		if task := m.currentTask(columns); task != nil {
			return m, m.overlayStack.Push(overlay.EditTaskForm(*task))
		}
		return m, nil

	case "d":
		if task := m.currentTask(columns); task != nil {
			m.pending = &pendingDelete{task: *task}
			dialog := overlay.NewConfirmDialog(
				"Delete Task",
				fmt.Sprintf("Delete %q?", task.Title),
			)
			return m, m.overlayStack.Push(dialog)
		}
		return m, nil

	case "t":
		if task := m.currentTask(columns); task != nil {
			return m, m.overlayStack.Push(overlay.NewTagEditor(*task))
		}
		return m, nil

	case "s":
		if task := m.currentTask(columns); task != nil {
			return m, m.overlayStack.Push(overlay.NewSubtaskEditor(*task))
		}
		return m, nil

	case "i":
		return m, m.overlayStack.Push(overlay.NewInviteForm())

	case "/":
		return m, m.overlayStack.Push(overlay.NewSearchBar())

	case ",":
		m.sortSpec.Toggle(domain.SortByPriority)
		return m, nil

	case ".":
		m.sortSpec.Toggle(domain.SortByDueDate)
		return m, nil

	case "x":
		if m.filter.IsActive() {
			m.filter.Clear()
			m.addToast(ToastInfo, "Filters cleared", 2*time.Second)
		}
		return m, nil

	case "S":
		if task := m.currentTask(columns); task != nil {
			if err := m.templates.SaveAsTemplate(*task); err != nil {
				m.addToast(ToastError, fmt.Sprintf("Failed to save template: %v", err), 5*time.Second)
			} else {
				m.addToast(ToastSuccess, "Saved as template", 3*time.Second)
			}
		}
		return m, nil

	case "T":
		return m, m.overlayStack.Push(overlay.NewTemplatePicker(m.templates.List()))
	}

	return m, nil
}

// currentTask returns a copy of the task under the cursor, or nil
func (m *Model) currentTask(columns []board.Column) *domain.Task {
	current := m.nav.Current(columns)
	if current == nil {
		return nil
	}
	idx := domain.FindTask(m.tasks, current.ID)
	if idx < 0 {
		return nil
	}
	task := m.tasks[idx]
	return &task
}

// moveCurrentTask shifts the task under the cursor one column left or right
func (m Model) moveCurrentTask(columns []board.Column, delta int) (tea.Model, tea.Cmd) {
	current := m.currentTask(columns)
	if current == nil {
		return m, nil
	}

	prevStatus := domain.NormalizeStatus(string(current.Status))
	prevCompleted := current.CompletedAt
	col := prevStatus.Column() + delta
	if col < 0 || col >= len(domain.AllStatuses) {
		return m, nil
	}
	next := domain.AllStatuses[col]

	idx := domain.FindTask(m.tasks, current.ID)
	m.tasks[idx].SetStatus(next, m.now())

	if err := m.accessor.SaveTasks(m.currentProject, m.tasks); err != nil {
		m.logger.Error("failed to save tasks", "error", err)
		m.addToast(ToastError, "Failed to save task", 5*time.Second)
		return m, nil
	}

	m.undoLog.Record(undo.TaskMoved(m.currentProject, current.ID, prevStatus, prevCompleted))
	m.nav.Select(current.ID, col)
	m.signals.Publish(bus.TasksChanged{ProjectID: m.currentProject})
	return m, nil
}

// handleTaskSubmitted applies a create or edit from the task form
func (m Model) handleTaskSubmitted(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	dueDateChanged := false

	if msg.ID == "" {
		task := domain.Task{
			ID:          domain.NewID("task"),
			Title:       msg.Title,
			Description: msg.Description,
			Status:      domain.StatusTodo,
			Priority:    msg.Priority,
			DueDate:     msg.DueDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		m.tasks = append(m.tasks, task)
		if err := m.accessor.SaveTasks(m.currentProject, m.tasks); err != nil {
			m.logger.Error("failed to save tasks", "error", err)
			m.addToast(ToastError, "Failed to create task", 5*time.Second)
			return m, nil
		}
		m.undoLog.Record(undo.TaskAdded(m.currentProject, task.ID))
		m.nav.Select(task.ID, task.Status.Column())
		m.addToast(ToastSuccess, "Task created", 3*time.Second)
		dueDateChanged = msg.DueDate != ""
	} else {
		idx := domain.FindTask(m.tasks, msg.ID)
		if idx < 0 {
			m.addToast(ToastWarning, "Task no longer exists", 3*time.Second)
			return m, nil
		}
		snapshot := m.tasks[idx]
		dueDateChanged = snapshot.DueDate != msg.DueDate

		m.tasks[idx].Title = msg.Title
		m.tasks[idx].Description = msg.Description
		m.tasks[idx].DueDate = msg.DueDate
		m.tasks[idx].Priority = msg.Priority
		m.tasks[idx].UpdatedAt = now

		if err := m.accessor.SaveTasks(m.currentProject, m.tasks); err != nil {
			m.logger.Error("failed to save tasks", "error", err)
			m.addToast(ToastError, "Failed to save task", 5*time.Second)
			return m, nil
		}
		m.undoLog.Record(undo.TaskUpdated(m.currentProject, snapshot))
		m.addToast(ToastSuccess, "Task updated", 3*time.Second)
	}

	m.signals.Publish(bus.TasksChanged{ProjectID: m.currentProject})
	if dueDateChanged {
		m.signals.Publish(bus.DueDateChanged{ProjectID: m.currentProject})
	}
	return m, nil
}

func (m Model) handleInviteSubmitted(msg overlay.InviteSubmittedMsg) (tea.Model, tea.Cmd) {
	title := ""
	for _, p := range m.projects {
		if p.ID == m.currentProject {
			title = p.Title
			break
		}
	}

	invitedBy := m.accessor.Profile().Username
	if err := m.members.Invite(m.currentProject, title, msg.Email, invitedBy); err != nil {
		if errors.Is(err, domain.ErrDuplicateMember) {
			m.addToast(ToastWarning, "Already a member", 3*time.Second)
		} else {
			m.addToast(ToastError, fmt.Sprintf("Invite failed: %v", err), 5*time.Second)
		}
		return m, nil
	}

	m.addToast(ToastSuccess, fmt.Sprintf("Invited %s", msg.Email), 3*time.Second)
	return m, nil
}

// handleSelection resolves confirm dialogs
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok {
		return m, nil
	}

	pending := m.pending
	m.pending = nil
	if !result.Confirmed || pending == nil {
		return m, nil
	}

	idx := domain.FindTask(m.tasks, pending.task.ID)
	if idx < 0 {
		return m, nil
	}
	snapshot := m.tasks[idx]
	m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)

	if err := m.accessor.SaveTasks(m.currentProject, m.tasks); err != nil {
		m.logger.Error("failed to save tasks", "error", err)
		m.addToast(ToastError, "Failed to delete task", 5*time.Second)
		return m, nil
	}

	m.undoLog.Record(undo.TaskDeleted(m.currentProject, snapshot))
	m.addToast(ToastSuccess, "Task deleted", 3*time.Second)
	m.signals.Publish(bus.TasksChanged{ProjectID: m.currentProject})
	return m, nil
}

// updateTaskInPlace runs change against the task, persisting and recording
// the inverse on success. The pre-change snapshot is deep-copied because tag
// and subtask edits mutate shared slice storage.
func (m *Model) updateTaskInPlace(taskID string, change func(*domain.Task) error) error {
	idx := domain.FindTask(m.tasks, taskID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	snapshot := m.tasks[idx].Clone()
	if err := change(&m.tasks[idx]); err != nil {
		return err
	}
	m.tasks[idx].UpdatedAt = m.now()

	if err := m.accessor.SaveTasks(m.currentProject, m.tasks); err != nil {
		return err
	}
	m.undoLog.Record(undo.TaskUpdated(m.currentProject, snapshot))
	m.signals.Publish(bus.TasksChanged{ProjectID: m.currentProject})
	return nil
}

func (m Model) handleTagAdded(msg overlay.TagAddedMsg) (tea.Model, tea.Cmd) {
	err := m.updateTaskInPlace(msg.TaskID, func(t *domain.Task) error {
		return t.AddTag(msg.Tag)
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateTag):
		m.addToast(ToastWarning, "Tag already exists", 3*time.Second)
	case errors.Is(err, domain.ErrNotFound):
		m.addToast(ToastWarning, "Task no longer exists", 3*time.Second)
	case err != nil:
		m.logger.Error("failed to add tag", "error", err)
		m.addToast(ToastError, "Failed to save task", 5*time.Second)
	}
	m.refreshTagEditor(msg.TaskID)
	return m, nil
}

func (m Model) handleTagRemoved(msg overlay.TagRemovedMsg) (tea.Model, tea.Cmd) {
	err := m.updateTaskInPlace(msg.TaskID, func(t *domain.Task) error {
		t.RemoveTag(msg.Tag)
		return nil
	})
	if err != nil {
		m.logger.Error("failed to remove tag", "error", err)
		m.addToast(ToastError, "Failed to save task", 5*time.Second)
	}
	m.refreshTagEditor(msg.TaskID)
	return m, nil
}

func (m Model) handleSubtaskAdded(msg overlay.SubtaskAddedMsg) (tea.Model, tea.Cmd) {
	err := m.updateTaskInPlace(msg.TaskID, func(t *domain.Task) error {
		t.Subtasks = append(t.Subtasks, domain.Subtask{
			ID:    domain.NewID("sub"),
			Title: msg.Title,
		})
		return nil
	})
	if err != nil {
		m.logger.Error("failed to add subtask", "error", err)
		m.addToast(ToastError, "Failed to save task", 5*time.Second)
	}
	m.refreshSubtaskEditor(msg.TaskID)
	return m, nil
}

func (m Model) handleSubtaskToggled(msg overlay.SubtaskToggledMsg) (tea.Model, tea.Cmd) {
	err := m.updateTaskInPlace(msg.TaskID, func(t *domain.Task) error {
		return t.ToggleSubtask(msg.SubtaskID)
	})
	if err != nil {
		m.logger.Error("failed to toggle subtask", "error", err)
		m.addToast(ToastError, "Failed to save task", 5*time.Second)
	}
	m.refreshSubtaskEditor(msg.TaskID)
	return m, nil
}

func (m *Model) refreshTagEditor(taskID string) {
	editor, ok := m.overlayStack.Current().(*overlay.TagEditor)
	if !ok {
		return
	}
	if idx := domain.FindTask(m.tasks, taskID); idx >= 0 {
		editor.SetTags(m.tasks[idx].Tags)
	}
}

func (m *Model) refreshSubtaskEditor(taskID string) {
	editor, ok := m.overlayStack.Current().(*overlay.SubtaskEditor)
	if !ok {
		return
	}
	if idx := domain.FindTask(m.tasks, taskID); idx >= 0 {
		editor.SetSubtasks(m.tasks[idx].Subtasks)
	}
}

func (m Model) handleTemplateChosen(msg overlay.TemplateChosenMsg) (tea.Model, tea.Cmd) {
	task, err := m.templates.Instantiate(msg.TemplateID, m.currentProject)
	if err != nil {
		m.logger.Error("failed to instantiate template", "error", err)
		m.addToast(ToastError, "Failed to create task from template", 5*time.Second)
		return m, nil
	}

	m.undoLog.Record(undo.TaskAdded(m.currentProject, task.ID))
	m.nav.Select(task.ID, task.Status.Column())
	m.addToast(ToastSuccess, fmt.Sprintf("Created %q from template", task.Title), 3*time.Second)
	m.signals.Publish(bus.TasksChanged{ProjectID: m.currentProject})
	return m, nil
}

func (m Model) handleTemplateDeleted(msg overlay.TemplateDeletedMsg) (tea.Model, tea.Cmd) {
	if err := m.templates.Delete(msg.TemplateID); err != nil {
		m.addToast(ToastError, "Failed to delete template", 5*time.Second)
	} else {
		m.addToast(ToastInfo, "Template deleted", 2*time.Second)
	}
	if picker, ok := m.overlayStack.Current().(*overlay.TemplatePicker); ok {
		picker.SetTemplates(m.templates.List())
	}
	return m, nil
}

// performUndo reverts the most recent mutation
func (m Model) performUndo() (tea.Model, tea.Cmd) {
	result, err := m.undoLog.Undo()
	switch {
	case errors.Is(err, undo.ErrNothingToUndo):
		m.addToast(ToastInfo, "Nothing to undo", 2*time.Second)
		return m, nil

	case err != nil:
		m.addToast(ToastError, "Could not undo", 4*time.Second)
		return m, nil
	}

	m.addToast(ToastSuccess, fmt.Sprintf("Undid %s", result.Kind), 3*time.Second)
	return m, nil
}

func (m *Model) addToast(level ToastLevel, message string, ttl time.Duration) {
	m.toasts = append(m.toasts, types.NewToast(level, message, ttl))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.sub != nil {
		m.sub.Cancel()
	}
	return m, tea.Quit
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var mainView string
	var viewName string
	if m.viewMode == ViewModeDaily {
		mainView = m.dailyView.Render()
		viewName = statusbar.ViewDaily
	} else {
		columns := m.buildColumns()
		pos := m.nav.Position(columns)
		cursor := board.Cursor{Column: pos.Column, Task: pos.Task}
		mainView = board.Render(columns, cursor, m.now(), m.styles, m.width, m.height-2)
		viewName = statusbar.ViewBoard
	}
	if !m.overlayStack.IsEmpty() && m.overlayStack.Editing() {
		viewName = statusbar.ViewEdit
	}

	sb := statusbar.New(viewName, m.projectTitle(), m.width, m.styles)
	view := lipgloss.JoinVertical(lipgloss.Left, mainView, sb.Render())

	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayView := current.View()
		overlayWidth, overlayHeight := current.Size()

		// Zero width means full width (the search bar)
		if overlayWidth == 0 {
			view = lipgloss.JoinVertical(lipgloss.Left, view, overlayView)
		} else {
			if title := current.Title(); title != "" {
				titleView := m.styles.OverlayTitle.Render(title)
				overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
			}
			overlayView = m.styles.Overlay.
				Width(overlayWidth).
				Height(overlayHeight).
				Render(overlayView)

			centered := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlayView)
			view = lipgloss.JoinVertical(lipgloss.Left, view, centered)
		}
	}

	if len(m.toasts) > 0 {
		renderer := toast.New(m.styles)
		if toastView := renderer.Render(m.toasts, m.width); toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

func (m Model) projectTitle() string {
	for _, p := range m.projects {
		if p.ID == m.currentProject {
			return p.Title
		}
	}
	return ""
}
