// Package guard enforces that only a non-expired credential grants access
// to protected views.
package guard

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/charmss/admin-client/internal/service"
	"github.com/charmss/admin-client/internal/session"
)

// Navigator receives redirect intents produced by guard decisions.
type Navigator interface {
	NavigateTo(route string)
}

// Decision is the guard's verdict for one route or credential change.
type Decision int

const (
	// ShowLogin renders the login view regardless of the requested route.
	ShowLogin Decision = iota
	// ShowView renders the requested view.
	ShowView
)

// Well-known routes.
const (
	LoginRoute    = "/login"
	HomeRoute     = "/"
	CallbackRoute = "/auth/callback"
)

// Callback holds the provider redirect parameters on the callback route.
type Callback struct {
	ExternalUserID string
	Provider       string
	Role           string
}

// Route is a navigation target plus optional callback parameters.
type Route struct {
	Path     string
	Callback *Callback
}

// Guard re-runs the session check on every route change and on every
// credential mutation. Expiry is time-dependent and the store is
// long-lived, so a single startup check is not enough.
type Guard struct {
	sessions *session.Store
	auth     service.AuthService
	nav      Navigator
	log      *zap.Logger
}

// New constructs a Guard.
func New(sessions *session.Store, auth service.AuthService, nav Navigator, log *zap.Logger) *Guard {
	return &Guard{sessions: sessions, auth: auth, nav: nav, log: log}
}

// Check runs the state machine for one route or credential change.
//
// Authenticated-valid: credential present and not expired, render the view.
// Unauthenticated on the callback route: attempt the callback exchange; on
// success populate the session and navigate home. Authenticated with an
// expired credential: clear and navigate to login, preserving the
// originating path as redirect intent (recorded, not acted on here).
func (g *Guard) Check(ctx context.Context, route Route) Decision {
	if g.sessions.IsValid() {
		return ShowView
	}

	if route.Path == CallbackRoute && route.Callback != nil {
		cb := route.Callback
		if _, err := g.auth.ValidateCallback(ctx, cb.ExternalUserID, cb.Provider, cb.Role); err != nil {
			g.log.Warn("callback validation failed",
				zap.String("provider", cb.Provider),
				zap.Error(err),
			)
			return ShowLogin
		}
		g.nav.NavigateTo(HomeRoute)
		return ShowView
	}

	st := g.sessions.State()
	if st.Credential != "" || st.LoggedIn {
		// stored credential turned out expired on this check
		g.sessions.ClearCredentials()
		g.log.Info("credential expired, redirecting to login", zap.String("from", route.Path))
		g.nav.NavigateTo(loginWithIntent(route.Path))
	}
	return ShowLogin
}

// loginWithIntent records the originating path for a post-login redirect.
func loginWithIntent(from string) string {
	if from == "" || from == LoginRoute {
		return LoginRoute
	}
	return LoginRoute + "?from=" + url.QueryEscape(from)
}
