// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the lifecycle of the signed-in state. The Store is a
// state machine with three super-states: restoring (the startup attempt to
// resurrect a session from persisted tokens), signed out, and signed in. It
// mediates credential operations against a pluggable backend, writes tokens
// through durable persistence, and emits user-facing notifications.
//
// Consistency guarantee: outside the initial restore window, a reader never
// observes a user without a token or a token without a user; both are set or
// cleared in the same transition.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"careerprep/cli/internal/backend"
	"careerprep/cli/internal/errs"
	"careerprep/cli/internal/logging"
	"careerprep/cli/internal/notify"
	"careerprep/cli/internal/oauth"
	"careerprep/cli/internal/tokenstore"
)

// Session is a point-in-time snapshot of the store's published state.
type Session struct {
	// User is the signed-in identity, nil when signed out.
	User *backend.User
	// Token is the access token backing the session, empty when signed out.
	Token string
	// Loading is true only during the initial restore attempt at startup.
	Loading bool
}

// SignedIn reports whether the snapshot represents an authenticated session.
func (s Session) SignedIn() bool { return s.User != nil && s.Token != "" }

// Config carries the store's collaborators, injected at construction.
// The backend implementation is chosen by the caller; the store never
// branches on which one it received.
type Config struct {
	Backend  backend.API
	Tokens   tokenstore.Store
	Notifier notify.Sink
	// OAuthURLs maps provider names to sign-in redirect URLs.
	OAuthURLs map[string]string
	// Redirector performs OAuth navigation; defaults to the browser.
	Redirector oauth.Redirector
	Logger     *zap.Logger
}

// Store is the session state machine. All state it publishes is owned
// exclusively by it; collaborators only see snapshots.
//
// Independent calls are not serialized against each other: two overlapping
// Login calls both run, and the last one to complete determines the final
// visible state. This double-submission race is a documented property of the
// design, not an accident; callers that need per-session serialization must
// provide it themselves.
type Store struct {
	be     backend.API
	tokens tokenstore.Store
	sink   notify.Sink
	oauth  *oauth.Dispatcher
	modal  *Modal
	log    *zap.Logger

	mu      sync.RWMutex
	user    *backend.User
	token   string
	loading bool
}

// New creates a Store in the restoring state. Call Initialize once to
// complete startup; until then the published session reports Loading.
func New(cfg Config) *Store {
	if cfg.Notifier == nil {
		cfg.Notifier = notify.Silent{}
	}
	if cfg.Redirector == nil {
		cfg.Redirector = oauth.Browser{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Store{
		be:      cfg.Backend,
		tokens:  cfg.Tokens,
		sink:    cfg.Notifier,
		modal:   newModal(),
		log:     cfg.Logger,
		loading: true,
	}
	// The dispatcher gets a handle to the store's modal mutator rather than
	// reaching into shared state.
	s.oauth = oauth.NewDispatcher(cfg.OAuthURLs, cfg.Redirector, cfg.Notifier, s.CloseAuthModal)
	return s
}

// Initialize runs the one-time restore-from-persistence attempt. A persisted
// token that the backend no longer resolves is expected, not an incident:
// both persisted and in-memory tokens are cleared and the store settles into
// the signed-out state without surfacing anything to the user.
func (s *Store) Initialize(ctx context.Context) {
	defer s.finishRestore()

	persisted, err := s.tokens.Get()
	if err != nil {
		s.log.Warn("token persistence unreadable", zap.Error(err))
		return
	}
	if persisted.AccessToken == "" {
		return
	}

	user, err := s.be.Me(ctx, persisted.AccessToken)
	if err != nil {
		if cerr := s.tokens.Clear(); cerr != nil {
			s.log.Warn("clearing stale tokens failed", zap.Error(cerr))
		}
		s.log.Debug("session restore failed, falling back to signed out",
			zap.String("kind", string(errs.KindOf(err))))
		return
	}

	s.mu.Lock()
	s.user = &user
	s.token = persisted.AccessToken
	s.mu.Unlock()
	s.log.Info("session restored",
		zap.String("email", user.Email),
		zap.String("token", logging.MaskToken(persisted.AccessToken)))
}

func (s *Store) finishRestore() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Login authenticates the given credentials. On success the token pair is
// persisted, user and token become visible atomically, a personalized
// success notification fires, and the response is returned. On failure an
// error notification carries the backend's message (or a generic fallback)
// and the error is re-signaled so the caller can keep its form open.
// Re-login while already signed in is allowed and replaces the session.
func (s *Store) Login(ctx context.Context, email, password string) (backend.AuthResponse, error) {
	resp, err := s.be.Login(ctx, email, password)
	if err != nil {
		s.sink.Error(errs.UserMessage(err, "Login failed"))
		return backend.AuthResponse{}, err
	}

	if perr := s.tokens.Set(tokenstore.Tokens{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
	}); perr != nil {
		// The in-memory session still proceeds; only durability is lost.
		s.log.Warn("persisting tokens failed", zap.Error(perr))
	}

	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.mu.Unlock()

	s.sink.Success(loginGreeting(resp.User.Name))
	s.log.Info("signed in",
		zap.String("email", resp.User.Email),
		zap.String("token", logging.MaskToken(resp.Token)))
	return resp, nil
}

// Register creates an account and emits a success notification, but does not
// sign the user in; registration and login are decoupled. Unlike Login,
// failures are not notified here: they propagate unmodified to the caller,
// which owns the user-facing handling. This asymmetry with Login is
// deliberate; do not "fix" it into symmetry.
func (s *Store) Register(ctx context.Context, name, email, password string) (string, error) {
	msg, err := s.be.Register(ctx, name, email, password)
	if err != nil {
		return "", err
	}
	if msg == "" {
		msg = "Registration successful! You can now log in."
	}
	s.sink.Success(msg)
	return msg, nil
}

// Logout clears persisted and in-memory tokens and the user, emits a success
// notification, and settles into the signed-out state. It always succeeds
// and is idempotent; no backend call is involved.
func (s *Store) Logout() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn("clearing persisted tokens failed", zap.Error(err))
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.sink.Success("Logged out successfully")
	s.log.Info("signed out")
}

// SetUser overrides the current user directly, bypassing persistence and
// notifications. It exists for callers that complete authentication
// out-of-band, e.g. a redirect flow resuming after navigation; such callers
// are responsible for persisting the token themselves if durability matters.
func (s *Store) SetUser(user *backend.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return
	}
	u := *user
	s.user = &u
}

// SetToken overrides the current token directly, bypassing persistence and
// notifications. See SetUser.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Session returns a snapshot of the published state. The user is copied so
// callers cannot mutate the store's record.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Session{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		out.User = &u
	}
	return out
}

// OAuthSignIn dispatches a sign-in redirect to the named provider.
// A successful dispatch closes the auth modal; an unconfigured provider
// fails with errs.OAuthNotConfigured and leaves the modal untouched.
func (s *Store) OAuthSignIn(provider string) error {
	return s.oauth.SignIn(provider)
}

// OpenAuthModal opens the auth prompt, optionally switching its view.
func (s *Store) OpenAuthModal(view ...View) { s.modal.Open(view...) }

// CloseAuthModal closes the auth prompt, retaining the last view.
func (s *Store) CloseAuthModal() { s.modal.Close() }

// AuthModal returns the auth prompt's current state.
func (s *Store) AuthModal() ModalState { return s.modal.State() }

// loginGreeting personalizes the login success message with the user's
// first name token when a name is present.
func loginGreeting(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fmt.Sprintf("Welcome back, %s!", fields[0])
	}
	return "Welcome back!"
}
