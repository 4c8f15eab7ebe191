// Package daily computes the date buckets shown by the daily overview.
package daily

import (
	"time"

	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/store"
)

// Buckets groups tasks by their relation to the current calendar day.
type Buckets struct {
	DueToday           []domain.Task
	Overdue            []domain.Task
	CompletedYesterday []domain.Task
}

// Bucketize sorts tasks into buckets against the supplied "now" instant.
// Completed tasks never appear in DueToday or Overdue.
func Bucketize(tasks []domain.Task, now time.Time) Buckets {
	var b Buckets
	for _, task := range tasks {
		if task.WasCompletedYesterday(now) {
			b.CompletedYesterday = append(b.CompletedYesterday, task)
		}
		if task.Status == domain.StatusDone {
			continue
		}
		switch {
		case task.IsDueToday(now):
			b.DueToday = append(b.DueToday, task)
		case task.IsOverdue(now):
			b.Overdue = append(b.Overdue, task)
		}
	}
	return b
}

// Service loads tasks across all projects and buckets them. The clock is
// injected so views render deterministically in tests.
type Service struct {
	store *store.Accessor
	now   func() time.Time
}

// NewService creates a daily service over the accessor.
func NewService(accessor *store.Accessor, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: accessor, now: now}
}

// Buckets re-reads every project's task list and recomputes the buckets.
// Handlers call it on any task or date change signal; it is a full reload,
// so redundant calls are harmless.
func (s *Service) Buckets() Buckets {
	var all []domain.Task
	for _, project := range s.store.Projects() {
		all = append(all, s.store.LoadTasks(project.ID)...)
	}
	return Bucketize(all, s.now())
}
