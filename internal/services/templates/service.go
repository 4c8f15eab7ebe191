// Package templates manages reusable task templates stored under a single
// key. Older data wrote templates under two different keys; this service
// reads and writes only the unified one.
package templates

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/store"
)

// Service provides template operations over the store accessor.
type Service struct {
	store  *store.Accessor
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a templates service.
func NewService(accessor *store.Accessor, logger *slog.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{store: accessor, logger: logger, now: now}
}

// List returns all stored templates.
func (s *Service) List() []domain.Task {
	return s.store.Templates()
}

// SaveAsTemplate stores a cleaned copy of the task as a reusable template.
func (s *Service) SaveAsTemplate(task domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	// Deep copy before clearing instance state: the struct parameter still
	// shares its Subtasks backing array with the caller's live task.
	task = task.Clone()
	task.ID = domain.NewID("tpl")
	task.Status = domain.StatusTodo
	task.CompletedAt = nil
	task.DueDate = ""
	for i := range task.Subtasks {
		task.Subtasks[i].Completed = false
	}

	list := append(s.store.Templates(), task)
	return s.store.SaveTemplates(list)
}

// Instantiate copies a template into a project's task list and returns the
// new task. The caller is responsible for recording the undo entry and
// publishing the change signal.
func (s *Service) Instantiate(templateID, projectID string) (domain.Task, error) {
	var tpl *domain.Task
	for _, candidate := range s.store.Templates() {
		if candidate.ID == templateID {
			found := candidate
			tpl = &found
			break
		}
	}
	if tpl == nil {
		return domain.Task{}, fmt.Errorf("template %s: %w", templateID, domain.ErrNotFound)
	}

	task := tpl.Clone()
	task.ID = domain.NewID("task")
	task.CreatedAt = s.now()
	task.UpdatedAt = s.now()
	for i := range task.Subtasks {
		task.Subtasks[i].ID = domain.NewID("sub")
	}

	tasks := append(s.store.LoadTasks(projectID), task)
	if err := s.store.SaveTasks(projectID, tasks); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Delete removes a template by id.
func (s *Service) Delete(templateID string) error {
	list := s.store.Templates()
	for i, tpl := range list {
		if tpl.ID == templateID {
			list = append(list[:i], list[i+1:]...)
			return s.store.SaveTemplates(list)
		}
	}
	return fmt.Errorf("template %s: %w", templateID, domain.ErrNotFound)
}
