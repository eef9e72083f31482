package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep/cli/internal/backend"
	"careerprep/cli/internal/errs"
	"careerprep/cli/internal/notify"
	"careerprep/cli/internal/tokenstore"
)

// fixture bundles a store with its injected fakes.
type fixture struct {
	store  *Store
	be     *backend.Memory
	tokens *tokenstore.Memory
	rec    *notify.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		be:     backend.NewMemory(0),
		tokens: tokenstore.NewMemory(),
		rec:    notify.NewRecorder(),
	}
	f.store = New(Config{
		Backend:  f.be,
		Tokens:   f.tokens,
		Notifier: f.rec,
	})
	return f
}

func TestNewStoreStartsRestoring(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.store.Session().Loading)
}

func TestInitializeWithoutPersistedToken(t *testing.T) {
	f := newFixture(t)
	f.store.Initialize(context.Background())

	sess := f.store.Session()
	assert.False(t, sess.Loading)
	assert.False(t, sess.SignedIn())
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
}

func TestInitializeRestoresValidToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A previous run left a valid token behind.
	resp, err := f.be.Login(ctx, backend.DemoEmail, backend.DemoPassword)
	require.NoError(t, err)
	require.NoError(t, f.tokens.Set(tokenstore.Tokens{AccessToken: resp.Token}))

	f.store.Initialize(ctx)

	sess := f.store.Session()
	assert.False(t, sess.Loading)
	require.True(t, sess.SignedIn())
	assert.Equal(t, resp.User, *sess.User)
	assert.Equal(t, resp.Token, sess.Token)
}

func TestInitializeClearsUnresolvableToken(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.tokens.Set(tokenstore.Tokens{
		AccessToken:  "stale-token",
		RefreshToken: "stale-refresh",
	}))

	f.store.Initialize(context.Background())

	sess := f.store.Session()
	assert.False(t, sess.Loading)
	assert.False(t, sess.SignedIn())

	// Both persisted slots are gone afterwards.
	persisted, err := f.tokens.Get()
	require.NoError(t, err)
	assert.Equal(t, tokenstore.Tokens{}, persisted)

	// Restore failure is expected behavior, never surfaced to the user.
	assert.Empty(t, f.rec.Events())
}

func TestLoginSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Initialize(ctx)

	resp, err := f.store.Login(ctx, backend.DemoEmail, backend.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "Demo User", resp.User.Name)
	assert.NotEmpty(t, resp.Token)

	sess := f.store.Session()
	require.True(t, sess.SignedIn())
	assert.Equal(t, resp.User, *sess.User)

	// Round-trip: persistence holds the same token as the in-memory session.
	persisted, err := f.tokens.Get()
	require.NoError(t, err)
	assert.Equal(t, sess.Token, persisted.AccessToken)
	assert.Equal(t, resp.RefreshToken, persisted.RefreshToken)

	last := f.rec.Last()
	assert.Equal(t, notify.LevelSuccess, last.Level)
	assert.Contains(t, last.Message, "Demo")
}

func TestLoginFailureKeepsPriorState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Initialize(ctx)

	_, err := f.store.Login(ctx, backend.DemoEmail, backend.DemoPassword)
	require.NoError(t, err)
	before := f.store.Session()
	f.rec.Reset()

	// A failed re-login leaves the signed-in session untouched.
	_, err = f.store.Login(ctx, backend.DemoEmail, "wrong")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidCredentials))

	after := f.store.Session()
	assert.Equal(t, before, after)

	last := f.rec.Last()
	assert.Equal(t, notify.LevelError, last.Level)
	assert.Equal(t, "Invalid email or password", last.Message)
}

func TestLoginFailureFromSignedOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Initialize(ctx)

	_, err := f.store.Login(ctx, backend.DemoEmail, "wrong")
	require.Error(t, err)

	sess := f.store.Session()
	assert.False(t, sess.SignedIn())
	persisted, _ := f.tokens.Get()
	assert.Equal(t, tokenstore.Tokens{}, persisted)
}

func TestRegisterDoesNotSignIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Initialize(ctx)

	msg, err := f.store.Register(ctx, "Jane", "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Registration successful! You can now log in.", msg)
	assert.Equal(t, notify.Event{Level: notify.LevelSuccess, Message: msg}, f.rec.Last())

	// Registration alone never transitions to signed in.
	assert.False(t, f.store.Session().SignedIn())

	// The created account can log in afterwards.
	_, err = f.store.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, f.store.Session().SignedIn())
}

// emptyMessageBackend simulates a backend whose register response carries
// no message, to exercise the fixed fallback.
type emptyMessageBackend struct{ backend.API }

func (emptyMessageBackend) Register(ctx context.Context, name, email, password string) (string, error) {
	return "", nil
}

func TestRegisterFallbackMessage(t *testing.T) {
	rec := notify.NewRecorder()
	store := New(Config{
		Backend:  emptyMessageBackend{API: backend.NewMemory(0)},
		Tokens:   tokenstore.NewMemory(),
		Notifier: rec,
	})

	msg, err := store.Register(context.Background(), "Jane", "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Registration successful! You can now log in.", msg)
	assert.Equal(t, msg, rec.Last().Message)
}

func TestRegisterFailurePropagatesUnnotified(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Initialize(ctx)
	f.rec.Reset()

	_, err := f.store.Register(ctx, "Other", backend.DemoEmail, "pw")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.DuplicateEmail))

	// Unlike Login, Register does not notify on failure; the caller owns it.
	assert.Empty(t, f.rec.Events())
}

func TestLogoutIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Initialize(ctx)

	_, err := f.store.Login(ctx, backend.DemoEmail, backend.DemoPassword)
	require.NoError(t, err)

	f.store.Logout()
	first := f.store.Session()
	persistedFirst, _ := f.tokens.Get()

	f.store.Logout()
	second := f.store.Session()
	persistedSecond, _ := f.tokens.Get()

	assert.False(t, first.SignedIn())
	assert.Equal(t, first, second)
	assert.Equal(t, tokenstore.Tokens{}, persistedFirst)
	assert.Equal(t, persistedFirst, persistedSecond)

	last := f.rec.Last()
	assert.Equal(t, notify.LevelSuccess, last.Level)
	assert.Equal(t, "Logged out successfully", last.Message)
}

func TestSetUserAndSetTokenBypassPersistence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Initialize(ctx)
	f.rec.Reset()

	user := backend.User{ID: 42, Name: "Redirect User", Email: "redirect@example.com"}
	f.store.SetUser(&user)
	f.store.SetToken("out-of-band-token")

	sess := f.store.Session()
	require.True(t, sess.SignedIn())
	assert.Equal(t, user, *sess.User)
	assert.Equal(t, "out-of-band-token", sess.Token)

	// No persistence write and no notification happened.
	persisted, _ := f.tokens.Get()
	assert.Equal(t, tokenstore.Tokens{}, persisted)
	assert.Empty(t, f.rec.Events())

	f.store.SetUser(nil)
	f.store.SetToken("")
	assert.False(t, f.store.Session().SignedIn())
}

type recordingRedirector struct {
	urls []string
}

func (r *recordingRedirector) Redirect(url string) error {
	r.urls = append(r.urls, url)
	return nil
}

func TestOAuthSignInConfiguredClosesModal(t *testing.T) {
	rec := notify.NewRecorder()
	redir := &recordingRedirector{}
	store := New(Config{
		Backend:    backend.NewMemory(0),
		Tokens:     tokenstore.NewMemory(),
		Notifier:   rec,
		OAuthURLs:  map[string]string{"Google": "https://accounts.google.com/signin"},
		Redirector: redir,
	})
	store.Initialize(context.Background())

	store.OpenAuthModal()
	require.NoError(t, store.OAuthSignIn("Google"))

	assert.False(t, store.AuthModal().Open)
	assert.Equal(t, []string{"https://accounts.google.com/signin"}, redir.urls)
	assert.Equal(t, notify.Event{Level: notify.LevelInfo, Message: "Redirecting to Google..."}, rec.Last())
}

func TestOAuthSignInUnconfigured(t *testing.T) {
	f := newFixture(t)
	f.store.Initialize(context.Background())
	f.store.OpenAuthModal()
	f.rec.Reset()

	err := f.store.OAuthSignIn("Google")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.OAuthNotConfigured))

	// Modal stays open, no navigation happened, one error notification fired.
	assert.True(t, f.store.AuthModal().Open)
	events := f.rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notify.Event{Level: notify.LevelError, Message: "Google sign-in is not configured yet"}, events[0])
}

func TestLoginGreeting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "full name uses first token", in: "Demo User", want: "Welcome back, Demo!"},
		{name: "single name", in: "Jane", want: "Welcome back, Jane!"},
		{name: "empty name falls back", in: "", want: "Welcome back!"},
		{name: "whitespace only falls back", in: "   ", want: "Welcome back!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, loginGreeting(tt.in))
		})
	}
}
