package domain

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical passes through", "2026-03-14", "2026-03-14"},
		{"rfc3339 reformatted", "2026-03-14T09:30:00Z", "2026-03-14"},
		{"empty", "", ""},
		{"garbage", "next tuesday", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.in); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	inputs := []string{"2026-03-14", "2026-03-14T09:30:00Z", "", "garbage"}
	for _, in := range inputs {
		once := NormalizeDate(in)
		if twice := NormalizeDate(once); twice != once {
			t.Errorf("NormalizeDate not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTask_DuePredicates(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		dueDate  string
		overdue  bool
		dueToday bool
	}{
		{"no due date", "", false, false},
		{"due yesterday", "2026-03-13", true, false},
		{"due today", "2026-03-14", false, true},
		{"due tomorrow", "2026-03-15", false, false},
		{"unparseable", "someday", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.dueDate}
			if got := task.IsOverdue(now); got != tt.overdue {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.overdue)
			}
			if got := task.IsDueToday(now); got != tt.dueToday {
				t.Errorf("IsDueToday() = %v, want %v", got, tt.dueToday)
			}
		})
	}
}

func TestTask_WasCompletedYesterday(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)

	at := func(v time.Time) *time.Time { return &v }

	tests := []struct {
		name        string
		completedAt *time.Time
		want        bool
	}{
		{"never completed", nil, false},
		{"completed yesterday afternoon", at(time.Date(2026, 3, 13, 16, 45, 0, 0, time.Local)), true},
		{"completed at yesterday midnight boundary", at(time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)), true},
		{"completed just before yesterday", at(time.Date(2026, 3, 12, 23, 59, 59, 0, time.Local)), false},
		{"completed today", at(time.Date(2026, 3, 14, 1, 0, 0, 0, time.Local)), false},
		{"more than 24h ago but still yesterday", at(time.Date(2026, 3, 13, 7, 0, 0, 0, time.Local)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{CompletedAt: tt.completedAt}
			if got := task.WasCompletedYesterday(now); got != tt.want {
				t.Errorf("WasCompletedYesterday() = %v, want %v", got, tt.want)
			}
		})
	}
}
