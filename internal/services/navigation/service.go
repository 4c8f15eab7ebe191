// Package navigation provides cursor and navigation state management
package navigation

import (
	"github.com/tabula-app/tabula/internal/ui/board"
)

// Position represents a computed position in the board
type Position struct {
	Column int  // Column index in canonical status order
	Task   int  // Index within the column
	Valid  bool // Whether the position points at a task
}

// Service tracks the selected task by ID so the cursor survives reloads,
// filtering and sorting.
type Service struct {
	taskID         string
	fallbackColumn int
}

// NewService creates a navigation service with the cursor on the first column.
func NewService() *Service {
	return &Service{}
}

// Select points the cursor at a specific task.
func (s *Service) Select(taskID string, column int) {
	s.taskID = taskID
	s.fallbackColumn = column
}

// Selected returns the id of the task under the cursor, if any.
func (s *Service) Selected() string {
	return s.taskID
}

// Position computes the cursor's position in the given columns. When the
// selected task is gone (deleted, moved out by a reload) the cursor falls
// back to the top of its last column.
func (s *Service) Position(columns []board.Column) Position {
	if s.taskID != "" {
		for colIdx, col := range columns {
			for taskIdx, task := range col.Tasks {
				if task.ID == s.taskID {
					return Position{Column: colIdx, Task: taskIdx, Valid: true}
				}
			}
		}
	}

	col := s.fallbackColumn
	if col >= len(columns) {
		col = 0
	}
	if col < len(columns) && len(columns[col].Tasks) > 0 {
		return Position{Column: col, Task: 0, Valid: true}
	}
	return Position{Column: col, Task: 0, Valid: false}
}

// MoveVertical moves the cursor up or down within its column.
func (s *Service) MoveVertical(columns []board.Column, delta int) {
	pos := s.Position(columns)
	if pos.Column >= len(columns) {
		return
	}
	col := columns[pos.Column]
	if len(col.Tasks) == 0 {
		return
	}

	idx := pos.Task + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(col.Tasks) {
		idx = len(col.Tasks) - 1
	}
	s.taskID = col.Tasks[idx].ID
	s.fallbackColumn = pos.Column
}

// MoveHorizontal moves the cursor to an adjacent column, keeping roughly the
// same row.
func (s *Service) MoveHorizontal(columns []board.Column, delta int) {
	pos := s.Position(columns)

	col := pos.Column + delta
	if col < 0 {
		col = 0
	}
	if col >= len(columns) {
		col = len(columns) - 1
	}
	s.fallbackColumn = col

	if col < len(columns) && len(columns[col].Tasks) > 0 {
		row := pos.Task
		if row >= len(columns[col].Tasks) {
			row = len(columns[col].Tasks) - 1
		}
		s.taskID = columns[col].Tasks[row].ID
	} else {
		s.taskID = ""
	}
}

// Current returns the task under the cursor, or nil.
func (s *Service) Current(columns []board.Column) *CurrentTask {
	pos := s.Position(columns)
	if !pos.Valid {
		return nil
	}
	task := columns[pos.Column].Tasks[pos.Task]
	return &CurrentTask{ID: task.ID, Position: pos}
}

// CurrentTask identifies the task under the cursor.
type CurrentTask struct {
	ID       string
	Position Position
}
