package domain

import "time"

// Task represents a card on the board
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         Status     `json:"status"`
	Priority       Priority   `json:"priority"`
	DueDate        string     `json:"dueDate,omitempty"`
	CompletedAt    *time.Time `json:"completedDate,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Subtasks       []Subtask  `json:"subtasks,omitempty"`
	Assignee       *Assignee  `json:"assignee,omitempty"`
	Collaborators  []string   `json:"collaborators,omitempty"`
	LinkedProjects []string   `json:"linkedProjects,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Subtask is an independently toggle-able child item of a task
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Assignee is a weak reference to a user by name
type Assignee struct {
	Name string `json:"name"`
}

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// Badge returns single character representation
func (p Priority) Badge() string {
	switch p {
	case PriorityHigh:
		return "H"
	case PriorityMedium:
		return "M"
	case PriorityLow:
		return "L"
	default:
		return "?"
	}
}

// Clone returns a deep copy. Task is mostly value-copied, but the slice and
// pointer fields share backing storage with the original; callers that mutate
// a copy (snapshots, templates) must clone first.
func (t Task) Clone() Task {
	c := t
	c.Tags = append([]string(nil), t.Tags...)
	c.Subtasks = append([]Subtask(nil), t.Subtasks...)
	c.Collaborators = append([]string(nil), t.Collaborators...)
	c.LinkedProjects = append([]string(nil), t.LinkedProjects...)
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		c.CompletedAt = &completed
	}
	if t.Assignee != nil {
		assignee := *t.Assignee
		c.Assignee = &assignee
	}
	return c
}

// Validate checks the task before it is written to the store.
func (t Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// SetStatus moves the task to a new status and maintains the completion
// timestamp: set when entering StatusDone, cleared when leaving it.
func (t *Task) SetStatus(next Status, now time.Time) {
	next = NormalizeStatus(string(next))
	if next == StatusDone {
		if t.Status != StatusDone {
			completed := now
			t.CompletedAt = &completed
		}
	} else {
		t.CompletedAt = nil
	}
	t.Status = next
}

// AddTag appends a tag, enforcing case-sensitive uniqueness.
func (t *Task) AddTag(tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	for _, existing := range t.Tags {
		if existing == tag {
			return ErrDuplicateTag
		}
	}
	t.Tags = append(t.Tags, tag)
	return nil
}

// RemoveTag deletes a tag if present.
func (t *Task) RemoveTag(tag string) {
	for i, existing := range t.Tags {
		if existing == tag {
			t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
			return
		}
	}
}

// ToggleSubtask flips the completed flag of the subtask with the given id.
func (t *Task) ToggleSubtask(id string) error {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == id {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			return nil
		}
	}
	return ErrNotFound
}

// SubtaskProgress returns completed and total subtask counts.
func (t Task) SubtaskProgress() (done, total int) {
	for _, st := range t.Subtasks {
		if st.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// FindTask returns the index of the task with the given id, or -1.
func FindTask(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
