// Package session holds the process-wide authenticated session: the current
// credential, the current user, and the logged-in flag. Mutations go through
// four actions only, and every mutation persists synchronously before it
// returns.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/charmss/admin-client/internal/model"
	"github.com/charmss/admin-client/internal/token"
)

// State is the persisted session snapshot.
type State struct {
	Credential string      `json:"credential,omitempty"`
	User       *model.User `json:"user,omitempty"`
	LoggedIn   bool        `json:"loggedIn"`
}

// Persister saves and restores session state under a fixed key.
type Persister interface {
	Save(State) error
	Load() (State, bool, error)
	Clear() error
}

// Revoker revokes an external OAuth grant for a user. Called best-effort at
// logout time; failures never block the local logout.
type Revoker interface {
	RevokeGrant(ctx context.Context, provider, userID string) error
}

// Store is the session service. Safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	st        State
	persist   Persister
	revoker   Revoker
	providers []string
	log       *zap.Logger
}

// New constructs a Store and rehydrates persisted state when present.
func New(p Persister, r Revoker, providers []string, log *zap.Logger) *Store {
	s := &Store{persist: p, revoker: r, providers: providers, log: log}
	st, ok, err := p.Load()
	switch {
	case err != nil:
		log.Warn("session restore failed", zap.Error(err))
	case ok:
		s.st = st
	}
	return s
}

// State returns a copy of the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// SetCredentials sets credential, user, and loggedIn=true in one action.
func (s *Store) SetCredentials(credential string, user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = State{Credential: credential, User: user, LoggedIn: true}
	s.persistLocked()
}

// UpdateUser replaces the user and leaves the credential untouched.
func (s *Store) UpdateUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.User = user
	s.st.LoggedIn = true
	s.persistLocked()
}

// ClearCredentials drops credential and user and flips loggedIn off.
func (s *Store) ClearCredentials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = State{}
	s.persistLocked()
}

// Logout revokes external grants for each configured provider, then always
// clears the local session. Revocation failures are logged, never returned.
func (s *Store) Logout(ctx context.Context) {
	defer s.ClearCredentials()

	st := s.State()
	if s.revoker == nil || st.User == nil {
		return
	}
	userID := st.User.Identity.ID
	for _, provider := range s.providers {
		if err := s.revoker.RevokeGrant(ctx, provider, userID); err != nil {
			s.log.Warn("grant revoke failed",
				zap.String("provider", provider),
				zap.Error(err),
			)
		}
	}
}

// IsValid reports whether a credential is present and not expired.
func (s *Store) IsValid() bool {
	st := s.State()
	return st.Credential != "" && !token.IsExpired(st.Credential)
}

func (s *Store) persistLocked() {
	if err := s.persist.Save(s.st); err != nil {
		s.log.Warn("session persist failed", zap.Error(err))
	}
}
