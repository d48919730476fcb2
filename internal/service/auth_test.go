package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/charmss/admin-client/internal/errs"
	"github.com/charmss/admin-client/internal/model"
	"github.com/charmss/admin-client/internal/session"
)

type memPersister struct {
	st session.State
}

func (m *memPersister) Save(st session.State) error { m.st = st; return nil }

func (m *memPersister) Load() (session.State, bool, error) { return m.st, m.st.LoggedIn, nil }

func (m *memPersister) Clear() error { m.st = session.State{}; return nil }

type fakeAuthBackend struct {
	cred string
	user *model.User
	err  error

	calls int
}

func (f *fakeAuthBackend) ValidateCallback(_ context.Context, _, _, _ string) (string, *model.User, error) {
	f.calls++
	return f.cred, f.user, f.err
}

func newSessionStore() *session.Store {
	return session.New(&memPersister{}, nil, nil, zap.NewNop())
}

func TestValidateCallback_PopulatesSession(t *testing.T) {
	t.Parallel()

	u := &model.User{Identity: model.Identity{ID: "u1", Email: "a@b.com"}}
	b := &fakeAuthBackend{cred: "cred-1", user: u}
	sessions := newSessionStore()
	s := NewAuthService(b, sessions, zap.NewNop())

	got, err := s.ValidateCallback(context.Background(), "ext-1", "google", "admin")
	if err != nil || got != u {
		t.Fatalf("ValidateCallback: %v %v", got, err)
	}
	st := sessions.State()
	if st.Credential != "cred-1" || st.User != u || !st.LoggedIn {
		t.Fatalf("session not populated: %+v", st)
	}
}

func TestValidateCallback_Validation(t *testing.T) {
	t.Parallel()

	b := &fakeAuthBackend{}
	s := NewAuthService(b, newSessionStore(), zap.NewNop())

	if _, err := s.ValidateCallback(context.Background(), "", "google", ""); err == nil {
		t.Fatalf("want validation error on empty userId")
	}
	if _, err := s.ValidateCallback(context.Background(), "x", "", ""); err == nil {
		t.Fatalf("want validation error on empty provider")
	}
	if b.calls != 0 {
		t.Fatalf("backend must not be called on validation failure")
	}
}

func TestValidateCallback_FailureLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	for name, backendErr := range map[string]error{
		"network":          errors.New("dial tcp: refused"),
		"invalid callback": errs.ErrInvalidCallback,
	} {
		b := &fakeAuthBackend{err: backendErr}
		sessions := newSessionStore()
		s := NewAuthService(b, sessions, zap.NewNop())

		if _, err := s.ValidateCallback(context.Background(), "x", "google", ""); !errors.Is(err, backendErr) {
			t.Fatalf("%s: want propagated error, got %v", name, err)
		}
		if st := sessions.State(); st.LoggedIn || st.Credential != "" {
			t.Fatalf("%s: session must stay empty: %+v", name, st)
		}
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	t.Parallel()

	sessions := newSessionStore()
	sessions.SetCredentials("cred-1", &model.User{Identity: model.Identity{ID: "u1"}})
	s := NewAuthService(&fakeAuthBackend{}, sessions, zap.NewNop())

	s.Logout(context.Background())
	if st := sessions.State(); st.LoggedIn {
		t.Fatalf("logout must clear session: %+v", st)
	}
}
