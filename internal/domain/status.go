// Package domain contains core business types for the Tabula application.
package domain

import "encoding/json"

// Status represents the lifecycle state of a task. The canonical values are
// the short board vocabulary; NormalizeStatus reconciles the legacy long
// vocabulary ("pending", "in_progress", "in_review") that older stored data
// may still carry.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusDone       Status = "completed"
)

// AllStatuses lists the canonical statuses in board column order.
var AllStatuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}

// NormalizeStatus maps any historical spelling onto the canonical set.
// It is total and idempotent: canonical values map to themselves and
// unrecognized input falls back to StatusTodo.
func NormalizeStatus(raw string) Status {
	switch raw {
	case "todo", "pending":
		return StatusTodo
	case "in-progress", "in_progress":
		return StatusInProgress
	case "review", "in_review":
		return StatusReview
	case "completed", "done":
		return StatusDone
	default:
		return StatusTodo
	}
}

// Column returns the kanban column index for this status
func (s Status) Column() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusReview:
		return 2
	case StatusDone:
		return 3
	default:
		return 0
	}
}

// BoardLabel returns the human-readable column title
func (s Status) BoardLabel() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusDone:
		return "Completed"
	default:
		return "To Do"
	}
}

// LegacySlug returns the long-form spelling used by older stored data.
func (s Status) LegacySlug() string {
	switch s {
	case StatusTodo:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusReview:
		return "in_review"
	case StatusDone:
		return "completed"
	default:
		return "pending"
	}
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON normalizes while decoding, so a task read from the store is
// always a member of the canonical set regardless of which vocabulary wrote it.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStatus(raw)
	return nil
}
