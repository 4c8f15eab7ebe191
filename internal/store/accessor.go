package store

import (
	"encoding/json"
	"log/slog"

	"github.com/tabula-app/tabula/internal/domain"
)

// Accessor exposes typed read/write helpers over the key-value store. Reads
// of stored lists fail soft: a missing key or a parse failure yields an empty
// list and a log line, never an error to the caller. Writes always replace
// the whole value for a key.
type Accessor struct {
	kv     KV
	logger *slog.Logger
}

// NewAccessor creates an accessor over the given store.
func NewAccessor(kv KV, logger *slog.Logger) *Accessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Accessor{kv: kv, logger: logger}
}

// loadList reads and decodes a stored list, substituting an empty list on any
// failure.
func loadList[T any](a *Accessor, key string) []T {
	data, ok, err := a.kv.Get(key)
	if err != nil {
		a.logger.Error("failed to read stored list", "key", key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		a.logger.Error("failed to parse stored list", "key", key, "error", err)
		return []T{}
	}
	return list
}

// saveList encodes and writes a whole list under its key.
func (a *Accessor) saveList(key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return &Error{Op: "encode", Key: key, Err: err}
	}
	return a.kv.Set(key, data)
}

// LoadTasks returns the task list for a project. Statuses are normalized
// during decoding, so callers always see canonical values.
func (a *Accessor) LoadTasks(projectID string) []domain.Task {
	return loadList[domain.Task](a, TasksKey(projectID))
}

// SaveTasks overwrites the entire task list for a project in one write.
func (a *Accessor) SaveTasks(projectID string, tasks []domain.Task) error {
	return a.saveList(TasksKey(projectID), tasks)
}

// Projects returns the project list.
func (a *Accessor) Projects() []domain.Project {
	return loadList[domain.Project](a, KeyProjects)
}

// SaveProjects overwrites the project list.
func (a *Accessor) SaveProjects(projects []domain.Project) error {
	return a.saveList(KeyProjects, projects)
}

// Templates returns the reusable task templates.
func (a *Accessor) Templates() []domain.Task {
	return loadList[domain.Task](a, KeyTemplates)
}

// SaveTemplates overwrites the template list.
func (a *Accessor) SaveTemplates(templates []domain.Task) error {
	return a.saveList(KeyTemplates, templates)
}

// Members returns the member list for a project.
func (a *Accessor) Members(projectID string) []domain.Member {
	return loadList[domain.Member](a, MembersKey(projectID))
}

// SaveMembers overwrites the member list for a project.
func (a *Accessor) SaveMembers(projectID string, members []domain.Member) error {
	return a.saveList(MembersKey(projectID), members)
}

// Invitations returns the pending invitations addressed to an email.
func (a *Accessor) Invitations(email string) []domain.Invitation {
	return loadList[domain.Invitation](a, InvitationsKey(email))
}

// SaveInvitations overwrites the invitation list for an email.
func (a *Accessor) SaveInvitations(email string, invitations []domain.Invitation) error {
	return a.saveList(InvitationsKey(email), invitations)
}

// Users returns the local user registry.
func (a *Accessor) Users() []domain.User {
	return loadList[domain.User](a, KeyUsers)
}

// SaveUsers overwrites the user registry.
func (a *Accessor) SaveUsers(users []domain.User) error {
	return a.saveList(KeyUsers, users)
}

// Profile assembles the session/profile flags from their scalar keys.
func (a *Accessor) Profile() domain.Profile {
	return domain.Profile{
		Username:      a.scalarString(KeyUsername),
		Email:         a.scalarString(KeyEmail),
		LoggedIn:      a.scalarBool(KeyLoggedIn),
		TutorialShown: a.scalarBool(KeyTutorialShown),
	}
}

// SaveProfile writes the session/profile flags back to their scalar keys.
func (a *Accessor) SaveProfile(p domain.Profile) error {
	pairs := []struct {
		key   string
		value any
	}{
		{KeyUsername, p.Username},
		{KeyEmail, p.Email},
		{KeyLoggedIn, p.LoggedIn},
		{KeyTutorialShown, p.TutorialShown},
	}
	for _, pair := range pairs {
		data, err := json.Marshal(pair.value)
		if err != nil {
			return &Error{Op: "encode", Key: pair.key, Err: err}
		}
		if err := a.kv.Set(pair.key, data); err != nil {
			return err
		}
	}
	return nil
}

func (a *Accessor) scalarString(key string) string {
	data, ok, err := a.kv.Get(key)
	if err != nil || !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		a.logger.Error("failed to parse stored value", "key", key, "error", err)
		return ""
	}
	return s
}

func (a *Accessor) scalarBool(key string) bool {
	data, ok, err := a.kv.Get(key)
	if err != nil || !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		a.logger.Error("failed to parse stored value", "key", key, "error", err)
		return false
	}
	return b
}
