package domain

import (
	"regexp"
	"time"
)

// Project groups tasks stored under its derived key. Aggregate counters
// (progress, completed, total) are computed from the live task list at read
// time and are never persisted.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// Progress holds the derived aggregate counters for a project.
type Progress struct {
	Total     int
	Completed int
	Percent   int
}

// ComputeProgress derives the aggregate counters from a task list.
func ComputeProgress(tasks []Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == StatusDone {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Completed * 100 / p.Total
	}
	return p
}

// MemberStatus describes a project member's standing
type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberInvited MemberStatus = "invited"
	MemberOwner   MemberStatus = "owner"
)

// Member is a participant in a project
type Member struct {
	Email    string       `json:"email"`
	Name     string       `json:"name"`
	Status   MemberStatus `json:"status"`
	JoinedAt time.Time    `json:"joinedAt"`
}

// Invitation is a pending invite addressed to a user's email
type Invitation struct {
	ProjectID    string    `json:"projectId"`
	ProjectTitle string    `json:"projectTitle"`
	InvitedBy    string    `json:"invitedBy"`
	InvitedAt    time.Time `json:"invitedAt"`
}

// User is an entry in the local user registry
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile holds the session/profile flags for the local user
type Profile struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	LoggedIn      bool   `json:"isLoggedIn"`
	TutorialShown bool   `json:"tutorialShown"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail rejects malformed addresses before they reach the store.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
