// Package store provides the key-value persistence layer and the typed
// accessor the rest of the application reads and writes through.
package store

import "fmt"

// KV is the opaque synchronous key-value store the application persists to.
// Reads and writes are atomic per key; there are no cross-key transactions.
type KV interface {
	// Get returns the raw value for key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set overwrites the value for key in a single write.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists all stored keys.
	Keys() ([]string, error)
	// Close releases the underlying resources.
	Close() error
}

// Well-known keys of the stored layout.
const (
	KeyProjects      = "projects"
	KeyTemplates     = "task-templates"
	KeyUsers         = "users"
	KeyUsername      = "username"
	KeyEmail         = "email"
	KeyLoggedIn      = "isLoggedIn"
	KeyTutorialShown = "tutorialShown"
)

// TasksKey derives the per-project task list key.
func TasksKey(projectID string) string {
	return "tasks-" + projectID
}

// MembersKey derives the per-project member list key.
func MembersKey(projectID string) string {
	return "project-members-" + projectID
}

// InvitationsKey derives the per-user invitation list key.
func InvitationsKey(email string) string {
	return "user-invitations-" + email
}

// Error wraps a failure from the key-value layer with its operation and key.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
