package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/store"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")
)

// AuthService resolves an existing session to its user. Token issuance and
// credential checks happen outside this service; it only consumes sessions
// already present in the store.
type AuthService interface {
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, error)
	Logout(ctx context.Context, sessionID int64) error
}

type authService struct {
	users    store.UserStore
	sessions store.SessionStore
}

func NewAuthService(users store.UserStore, sessions store.SessionStore) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
	}
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	session, err := s.sessions.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
