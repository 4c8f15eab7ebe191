package domain

import "time"

// DateLayout is the canonical storage format for due dates.
const DateLayout = "2006-01-02"

// FormatDate renders a time as a canonical due-date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a stored due-date string. It accepts the canonical
// yyyy-MM-dd form and full RFC 3339 timestamps (older data stored those).
// Returns ok=false for empty or unparseable input rather than an error.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// NormalizeDate reformats any parseable date string into the canonical form.
// Canonical input passes through unchanged; unparseable input yields "".
func NormalizeDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return FormatDate(t)
}

// sameCalendarDay compares two instants by local calendar day, not by any
// 24-hour rolling window.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsOverdue reports whether the task's due date falls on a calendar day
// before "now". A task without a due date is never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	due, ok := ParseDate(t.DueDate)
	if !ok {
		return false
	}
	if sameCalendarDay(due, now) {
		return false
	}
	return due.Before(now)
}

// IsDueToday reports whether the task's due date is the same calendar day as
// "now". A task without a due date is never due today.
func (t Task) IsDueToday(now time.Time) bool {
	due, ok := ParseDate(t.DueDate)
	if !ok {
		return false
	}
	return sameCalendarDay(due, now)
}

// WasCompletedYesterday reports whether the task was completed during the
// calendar day before "now", midnight to midnight in local time.
func (t Task) WasCompletedYesterday(now time.Time) bool {
	if t.CompletedAt == nil {
		return false
	}
	yesterday := now.AddDate(0, 0, -1)
	return sameCalendarDay(t.CompletedAt.In(now.Location()), yesterday)
}
