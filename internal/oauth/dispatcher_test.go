package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep/cli/internal/errs"
	"careerprep/cli/internal/notify"
)

type fakeRedirector struct {
	urls []string
	err  error
}

func (f *fakeRedirector) Redirect(url string) error {
	if f.err != nil {
		return f.err
	}
	f.urls = append(f.urls, url)
	return nil
}

func TestSignInConfiguredProvider(t *testing.T) {
	rec := notify.NewRecorder()
	fr := &fakeRedirector{}
	closed := false
	d := NewDispatcher(
		map[string]string{"Google": "https://accounts.google.com/signin"},
		fr, rec, func() { closed = true },
	)

	require.NoError(t, d.SignIn("Google"))
	assert.True(t, closed)
	assert.Equal(t, []string{"https://accounts.google.com/signin"}, fr.urls)
	assert.Equal(t, notify.Event{Level: notify.LevelInfo, Message: "Redirecting to Google..."}, rec.Last())
}

func TestSignInProviderLookupIsCaseInsensitive(t *testing.T) {
	fr := &fakeRedirector{}
	d := NewDispatcher(map[string]string{"github": "https://github.com/login"}, fr, notify.Silent{}, nil)

	require.NoError(t, d.SignIn("GitHub"))
	assert.Equal(t, []string{"https://github.com/login"}, fr.urls)
}

func TestSignInUnconfiguredProvider(t *testing.T) {
	rec := notify.NewRecorder()
	fr := &fakeRedirector{}
	closed := false
	d := NewDispatcher(nil, fr, rec, func() { closed = true })

	err := d.SignIn("Google")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.OAuthNotConfigured))

	// No navigation, no modal change, one error notification.
	assert.Empty(t, fr.urls)
	assert.False(t, closed)
	assert.Equal(t, notify.Event{Level: notify.LevelError, Message: "Google sign-in is not configured yet"}, rec.Last())
}
