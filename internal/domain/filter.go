package domain

import "strings"

// Filter represents task filtering state
type Filter struct {
	Priority    map[Priority]bool
	Tags        map[string]bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Priority: make(map[Priority]bool),
		Tags:     make(map[string]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Priority) > 0 ||
		len(f.Tags) > 0 ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters.
// Uses AND logic between filter types, OR logic within filter types.
func (f *Filter) Matches(t Task) bool {
	if len(f.Priority) > 0 {
		if !f.Priority[t.Priority] {
			return false
		}
	}

	if len(f.Tags) > 0 {
		found := false
		for _, tag := range t.Tags {
			if f.Tags[tag] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Search query (case-insensitive, matches title, tags or ID)
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		if strings.Contains(strings.ToLower(t.Title), query) {
			return true
		}
		if strings.Contains(strings.ToLower(t.ID), query) {
			return true
		}
		for _, tag := range t.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				return true
			}
		}
		return false
	}

	return true
}

// SetQuery parses a raw search line into the filter. Tokens starting with
// "#" select tags (exact match), tokens starting with "!" select priorities,
// everything else becomes the free-text query. The query owns the tag and
// priority sets; each call rebuilds them from scratch.
func (f *Filter) SetQuery(raw string) {
	f.Priority = make(map[Priority]bool)
	f.Tags = make(map[string]bool)

	var terms []string
	for _, token := range strings.Fields(raw) {
		switch {
		case strings.HasPrefix(token, "#") && len(token) > 1:
			f.Tags[token[1:]] = true

		case strings.HasPrefix(token, "!") && len(token) > 1:
			switch strings.ToLower(token[1:]) {
			case "high", "h":
				f.Priority[PriorityHigh] = true
			case "medium", "med", "m":
				f.Priority[PriorityMedium] = true
			case "low", "l":
				f.Priority[PriorityLow] = true
			}

		default:
			terms = append(terms, token)
		}
	}
	f.SearchQuery = strings.Join(terms, " ")
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Priority = make(map[Priority]bool)
	f.Tags = make(map[string]bool)
	f.SearchQuery = ""
}

// TogglePriority toggles a priority filter
func (f *Filter) TogglePriority(p Priority) {
	if f.Priority[p] {
		delete(f.Priority, p)
	} else {
		f.Priority[p] = true
	}
}

// ToggleTag toggles a tag filter
func (f *Filter) ToggleTag(tag string) {
	if f.Tags[tag] {
		delete(f.Tags, tag)
	} else {
		f.Tags[tag] = true
	}
}
