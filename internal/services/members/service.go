// Package members manages project membership and pending invitations.
package members

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/store"
)

// Service provides membership operations over the store accessor.
type Service struct {
	store  *store.Accessor
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a members service.
func NewService(accessor *store.Accessor, logger *slog.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{store: accessor, logger: logger, now: now}
}

// Members returns the member list for a project.
func (s *Service) Members(projectID string) []domain.Member {
	return s.store.Members(projectID)
}

// Invite validates the email, records an invited member on the project and
// queues an invitation under the invitee's email. The store is untouched
// when validation fails.
func (s *Service) Invite(projectID, projectTitle, email, invitedBy string) error {
	if err := domain.ValidateEmail(email); err != nil {
		return err
	}

	members := s.store.Members(projectID)
	for _, m := range members {
		if m.Email == email {
			return domain.ErrDuplicateMember
		}
	}

	members = append(members, domain.Member{
		Email:    email,
		Status:   domain.MemberInvited,
		JoinedAt: s.now(),
	})
	if err := s.store.SaveMembers(projectID, members); err != nil {
		return err
	}

	invitations := s.store.Invitations(email)
	invitations = append(invitations, domain.Invitation{
		ProjectID:    projectID,
		ProjectTitle: projectTitle,
		InvitedBy:    invitedBy,
		InvitedAt:    s.now(),
	})
	return s.store.SaveInvitations(email, invitations)
}

// Accept consumes a pending invitation and activates the member entry.
func (s *Service) Accept(email, name, projectID string) error {
	invitations := s.store.Invitations(email)
	found := -1
	for i, inv := range invitations {
		if inv.ProjectID == projectID {
			found = i
			break
		}
	}
	if found < 0 {
		return fmt.Errorf("invitation for %s: %w", projectID, domain.ErrNotFound)
	}

	invitations = append(invitations[:found], invitations[found+1:]...)
	if err := s.store.SaveInvitations(email, invitations); err != nil {
		return err
	}

	members := s.store.Members(projectID)
	for i := range members {
		if members[i].Email == email {
			members[i].Status = domain.MemberActive
			members[i].Name = name
			return s.store.SaveMembers(projectID, members)
		}
	}

	// Invitation existed but the member entry is gone; recreate it.
	s.logger.Warn("member entry missing for accepted invitation", "project", projectID, "email", email)
	members = append(members, domain.Member{
		Email:    email,
		Name:     name,
		Status:   domain.MemberActive,
		JoinedAt: s.now(),
	})
	return s.store.SaveMembers(projectID, members)
}
