package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/models"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/session"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/users"
)

// SessionService owns the single current-user slot. It never mutates user
// records; login and logout only touch the slot.
type SessionService struct {
	sessions session.Repository
	users    users.Repository
}

// NewSessionService constructs a SessionService over the two repositories.
func NewSessionService(sessions session.Repository, users users.Repository) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// SetCurrent records the email as the active session. Idempotent.
func (s *SessionService) SetCurrent(ctx context.Context, email string) error {
	return s.sessions.Set(ctx, email)
}

// Current resolves the stored slot to a user record. Returns
// common.ErrorNotFound when no session is active or when the referenced
// account no longer exists (a dangling slot is treated as logged out).
func (s *SessionService) Current(ctx context.Context) (*models.User, error) {
	email, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return user, nil
}

// ClearCurrent logs the user out by removing the slot.
func (s *SessionService) ClearCurrent(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}
