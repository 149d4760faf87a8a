// Package application holds the coordinators: stateful components that
// orchestrate multi-step flows over the API services and expose
// observable snapshots the CLI renders from.
package application

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/bnema/lets-share-cli/internal/adapters/api"
	"github.com/bnema/lets-share-cli/internal/domain"
	"github.com/bnema/lets-share-cli/internal/ports"
)

type AuthState string

const (
	StateAnonymous      AuthState = "anonymous"
	StateAuthenticating AuthState = "authenticating"
	StateAuthenticated  AuthState = "authenticated"
	StateError          AuthState = "error"
)

// AuthSnapshot is an immutable view of the auth state machine. Notice
// carries a transient confirmation message (e.g. after sign-up).
type AuthSnapshot struct {
	State  AuthState
	User   domain.User
	Err    string
	Notice string
}

// AuthService is the slice of the API layer the coordinator needs.
type AuthService interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, error)
}

// AuthFlow coordinates sign-up, login and logout. Concurrent logins
// don't race-corrupt state: each invocation gets a sequence number and
// only the latest one may publish its result (last write wins); the
// superseded network call is never cancelled, just ignored.
type AuthFlow struct {
	auth     AuthService
	sessions ports.SessionStore
	nav      ports.Navigator
	log      *slog.Logger

	mu        sync.Mutex
	snap      AuthSnapshot
	seq       uint64
	listeners []func(AuthSnapshot)
}

func NewAuthFlow(auth AuthService, sessions ports.SessionStore, nav ports.Navigator, log *slog.Logger) *AuthFlow {
	if nav == nil {
		nav = ports.NopNavigator{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &AuthFlow{
		auth:     auth,
		sessions: sessions,
		nav:      nav,
		log:      log,
		snap:     AuthSnapshot{State: StateAnonymous},
	}
}

// Subscribe registers a listener invoked after every published state
// change. Listeners run outside the coordinator lock.
func (f *AuthFlow) Subscribe(fn func(AuthSnapshot)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *AuthFlow) Snapshot() AuthSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

// Initialize rehydrates auth state from the session store at startup.
// A cached session with a user identity is trusted as-is; no network
// call is made.
func (f *AuthFlow) Initialize(ctx context.Context) {
	session, err := f.sessions.Get(ctx)
	if err != nil || !session.Authenticated() || session.User.ID == 0 {
		f.publish(AuthSnapshot{State: StateAnonymous})
		return
	}

	f.log.Debug("session rehydrated", "user_id", session.User.ID)
	f.publish(AuthSnapshot{State: StateAuthenticated, User: session.User})
}

// Login authenticates and, on success, navigates to the intended
// destination recorded before the login round-trip (or the feed).
func (f *AuthFlow) Login(ctx context.Context, creds domain.Credentials) error {
	seq := f.begin()

	session, err := f.auth.Login(ctx, creds)
	if err != nil {
		f.finish(seq, AuthSnapshot{State: StateError, Err: api.Detail(err)})
		return err
	}

	if f.finish(seq, AuthSnapshot{State: StateAuthenticated, User: session.User}) {
		route, ok := f.nav.ConsumeIntended()
		if !ok {
			route = ports.RouteFeed
		}
		f.nav.NavigateTo(route)
	}

	return nil
}

// SignUp creates the account but does not authenticate it; the user is
// sent to the login entry point with a confirmation notice.
func (f *AuthFlow) SignUp(ctx context.Context, req domain.SignUpRequest) (domain.User, error) {
	seq := f.begin()

	user, err := f.auth.SignUp(ctx, req)
	if err != nil {
		f.finish(seq, AuthSnapshot{State: StateError, Err: api.Detail(err)})
		return domain.User{}, err
	}

	if f.finish(seq, AuthSnapshot{
		State:  StateAnonymous,
		Notice: "Account created. Sign in to continue.",
	}) {
		f.nav.NavigateTo(ports.RouteLogin)
	}

	return user, nil
}

// Logout clears the session synchronously; no network call is made.
func (f *AuthFlow) Logout(ctx context.Context) error {
	err := f.sessions.Clear(ctx)
	if err != nil {
		f.log.Warn("clear session on logout", "error", err)
	}

	f.mu.Lock()
	f.seq++
	f.snap = AuthSnapshot{State: StateAnonymous}
	f.mu.Unlock()
	f.notify()

	f.nav.NavigateTo(ports.RouteLogin)
	return err
}

// begin moves to authenticating and claims a sequence number for this
// invocation.
func (f *AuthFlow) begin() uint64 {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.snap = AuthSnapshot{State: StateAuthenticating}
	f.mu.Unlock()
	f.notify()
	return seq
}

// finish publishes the result only if no later invocation has begun
// since; reports whether the snapshot was applied.
func (f *AuthFlow) finish(seq uint64, snap AuthSnapshot) bool {
	f.mu.Lock()
	if seq != f.seq {
		f.mu.Unlock()
		return false
	}
	f.snap = snap
	f.mu.Unlock()
	f.notify()
	return true
}

func (f *AuthFlow) publish(snap AuthSnapshot) {
	f.mu.Lock()
	f.snap = snap
	f.mu.Unlock()
	f.notify()
}

func (f *AuthFlow) notify() {
	f.mu.Lock()
	listeners := slices.Clone(f.listeners)
	snap := f.snap
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
