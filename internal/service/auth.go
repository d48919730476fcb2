// Package service contains application services for authentication and
// performer listings.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/charmss/admin-client/internal/model"
	"github.com/charmss/admin-client/internal/session"
)

// AuthBackend is the slice of the API client the auth service depends on.
type AuthBackend interface {
	ValidateCallback(ctx context.Context, externalUserID, provider, role string) (string, *model.User, error)
}

// AuthService defines session bootstrap and teardown operations.
type AuthService interface {
	// ValidateCallback exchanges a provider redirect for a credential and
	// populates the session store. On any failure the store is untouched.
	ValidateCallback(ctx context.Context, externalUserID, provider, role string) (*model.User, error)
	// Logout revokes external grants best-effort and always clears the session.
	Logout(ctx context.Context)
}

type AuthServiceImpl struct {
	backend  AuthBackend
	sessions *session.Store
	log      *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(backend AuthBackend, sessions *session.Store, log *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{backend: backend, sessions: sessions, log: log}
}

// ValidateCallback exchanges the redirect parameters for a credential and
// user and stores both in one action. Errors propagate so the caller decides
// recovery; the session is only mutated on full success.
func (s *AuthServiceImpl) ValidateCallback(ctx context.Context, externalUserID, provider, role string) (*model.User, error) {
	if externalUserID == "" || provider == "" {
		return nil, errors.New("validation: empty userId/provider")
	}
	credential, user, err := s.backend.ValidateCallback(ctx, externalUserID, provider, role)
	if err != nil {
		return nil, err
	}
	s.sessions.SetCredentials(credential, user)
	s.log.Info("session established",
		zap.String("provider", provider),
		zap.String("userID", user.Identity.ID),
	)
	return user, nil
}

// Logout delegates to the session store's revoke-then-clear sequence.
func (s *AuthServiceImpl) Logout(ctx context.Context) {
	s.sessions.Logout(ctx)
}
