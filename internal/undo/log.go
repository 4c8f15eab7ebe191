// Package undo implements the bounded action-history log. Each recorded
// action carries enough payload to revert one mutation on its own; undoing
// consumes the entry, writes the reverted list back through the accessor and
// notifies mounted views over the bus.
package undo

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tabula-app/tabula/internal/bus"
	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/store"
)

// Capacity bounds the history; the oldest entries are evicted silently.
const Capacity = 20

// Kind identifies which mutation an action reverts.
type Kind int

const (
	KindDelete Kind = iota
	KindMove
	KindUpdate
	KindAdd
)

// String returns the display string
func (k Kind) String() string {
	switch k {
	case KindDelete:
		return "delete"
	case KindMove:
		return "move"
	case KindUpdate:
		return "update"
	case KindAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Action describes how to revert one mutation. The payload depends on Kind:
// a full pre-mutation snapshot for delete and update, the task id plus its
// previous status and completion instant for move, and the bare task id for
// add.
type Action struct {
	Kind          Kind
	ProjectID     string
	At            time.Time
	Snapshot      *domain.Task
	TaskID        string
	PrevStatus    domain.Status
	PrevCompleted *time.Time
}

// TaskDeleted records the pre-deletion snapshot of a task.
func TaskDeleted(projectID string, snapshot domain.Task) Action {
	return Action{Kind: KindDelete, ProjectID: projectID, Snapshot: &snapshot}
}

// TaskMoved records a status change, keeping the status it moved away from
// and the completion instant the task carried at that point. Without the
// instant, undoing a move out of completed would re-stamp the timestamp with
// the undo time.
func TaskMoved(projectID, taskID string, prevStatus domain.Status, prevCompleted *time.Time) Action {
	return Action{
		Kind:          KindMove,
		ProjectID:     projectID,
		TaskID:        taskID,
		PrevStatus:    prevStatus,
		PrevCompleted: prevCompleted,
	}
}

// TaskUpdated records the full pre-update snapshot of a task.
func TaskUpdated(projectID string, snapshot domain.Task) Action {
	return Action{Kind: KindUpdate, ProjectID: projectID, Snapshot: &snapshot}
}

// TaskAdded records the id of a newly created task.
func TaskAdded(projectID, taskID string) Action {
	return Action{Kind: KindAdd, ProjectID: projectID, TaskID: taskID}
}

// Errors reported by Undo.
var (
	// ErrNothingToUndo is the informational no-op for an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNotUndoable is reported for an action of unknown kind.
	ErrNotUndoable = errors.New("action cannot be undone")
)

// Result describes a consumed history entry.
type Result struct {
	Kind      Kind
	ProjectID string
}

// Log is the in-memory action history. It is constructed once at application
// start and injected into the root view; it is deliberately not persisted, so
// a restart clears the history. There is no redo.
type Log struct {
	mu      sync.Mutex
	actions []Action // front = most recent
	store   *store.Accessor
	bus     *bus.Bus
	logger  *slog.Logger
	now     func() time.Time
}

// New creates an empty log over the given accessor and bus.
func New(accessor *store.Accessor, b *bus.Bus, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		store:  accessor,
		bus:    b,
		logger: logger,
		now:    time.Now,
	}
}

// Record pushes an action onto the front of the history, evicting the oldest
// entries beyond Capacity.
func (l *Log) Record(a Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if a.At.IsZero() {
		a.At = l.now()
	}
	l.actions = append([]Action{a}, l.actions...)
	if len(l.actions) > Capacity {
		l.actions = l.actions[:Capacity]
	}
}

// Len returns the number of recorded actions.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.actions)
}

// Undo pops the most recent action and applies its inverse. The entry is
// consumed whether or not the inverse succeeds; a failed inverse leaves the
// stored list untouched. On success exactly one project-scoped
// BoardInvalidated signal is published.
func (l *Log) Undo() (Result, error) {
	l.mu.Lock()
	if len(l.actions) == 0 {
		l.mu.Unlock()
		return Result{}, ErrNothingToUndo
	}
	action := l.actions[0]
	l.actions = l.actions[1:]
	l.mu.Unlock()

	result := Result{Kind: action.Kind, ProjectID: action.ProjectID}
	if err := l.applyInverse(action); err != nil {
		l.logger.Error("undo failed",
			"kind", action.Kind.String(),
			"project", action.ProjectID,
			"error", err)
		return result, err
	}

	l.bus.Publish(bus.BoardInvalidated{
		ProjectID: action.ProjectID,
		Change:    action.Kind.String(),
	})
	return result, nil
}

func (l *Log) applyInverse(action Action) error {
	tasks := l.store.LoadTasks(action.ProjectID)

	switch action.Kind {
	case KindDelete:
		// Re-append the deleted snapshot to the end of the current list.
		tasks = append(tasks, *action.Snapshot)

	case KindMove:
		i := domain.FindTask(tasks, action.TaskID)
		if i < 0 {
			// The task was deleted since the move; do not resurrect it.
			return fmt.Errorf("task %s: %w", action.TaskID, domain.ErrNotFound)
		}
		tasks[i].SetStatus(action.PrevStatus, l.now())
		// Restore the exact pre-move instant instead of the undo time.
		tasks[i].CompletedAt = action.PrevCompleted

	case KindUpdate:
		i := domain.FindTask(tasks, action.Snapshot.ID)
		if i < 0 {
			return fmt.Errorf("task %s: %w", action.Snapshot.ID, domain.ErrNotFound)
		}
		// Full snapshot overwrite, not a field-level merge.
		tasks[i] = *action.Snapshot

	case KindAdd:
		i := domain.FindTask(tasks, action.TaskID)
		if i < 0 {
			return fmt.Errorf("task %s: %w", action.TaskID, domain.ErrNotFound)
		}
		tasks = append(tasks[:i], tasks[i+1:]...)

	default:
		return ErrNotUndoable
	}

	return l.store.SaveTasks(action.ProjectID, tasks)
}
