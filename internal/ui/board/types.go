package board

import "github.com/tabula-app/tabula/internal/domain"

// Column represents a kanban column with tasks
type Column struct {
	Status domain.Status
	Title  string
	Tasks  []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-3)
	Task   int // Task index within column
}

// BuildColumns groups tasks into the four canonical columns. Statuses are
// normalized first, so a task never disappears over a spelling mismatch.
func BuildColumns(tasks []domain.Task) []Column {
	columns := make([]Column, len(domain.AllStatuses))
	for i, status := range domain.AllStatuses {
		columns[i] = Column{Status: status, Title: status.BoardLabel()}
	}
	for _, task := range tasks {
		status := domain.NormalizeStatus(string(task.Status))
		columns[status.Column()].Tasks = append(columns[status.Column()].Tasks, task)
	}
	return columns
}
