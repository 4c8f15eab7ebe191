package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByDueDate  SortField = "due"
	SortByUpdated  SortField = "updated"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction.
// A different field resets to ascending; the same field flips the order.
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a list of tasks without modifying the input slice
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 || s.Field == "" {
		return tasks
	}

	result := make([]Task, len(tasks))
	copy(result, tasks)

	switch s.Field {
	case SortByPriority:
		sort.SliceStable(result, func(i, j int) bool {
			pi := priorityRank(result[i].Priority)
			pj := priorityRank(result[j].Priority)
			if s.Order == SortAsc {
				return pi > pj // High priority first in ascending
			}
			return pi < pj
		})

	case SortByDueDate:
		sort.SliceStable(result, func(i, j int) bool {
			di, oki := ParseDate(result[i].DueDate)
			dj, okj := ParseDate(result[j].DueDate)
			// Tasks without a due date sink to the bottom either way
			if oki != okj {
				return oki
			}
			if !oki {
				return false
			}
			if s.Order == SortAsc {
				return di.Before(dj)
			}
			return di.After(dj)
		})

	case SortByUpdated:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].UpdatedAt.Before(result[j].UpdatedAt)
			}
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		})
	}

	return result
}

// priorityRank returns the ordering value for priorities.
// Higher values = more urgent.
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
