package auth

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appprofiles "github.com/preston-bernstein/club-studio/internal/app/profiles"
	"github.com/preston-bernstein/club-studio/internal/store"
)

type captureMailer struct {
	mu    sync.Mutex
	links map[string]string
}

func (m *captureMailer) SendMagicLink(ctx context.Context, email, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.links == nil {
		m.links = make(map[string]string)
	}
	m.links[email] = link
	return nil
}

func (m *captureMailer) token(t *testing.T, email string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	u, err := url.Parse(m.links[email])
	require.NoError(t, err)
	return u.Query().Get("token")
}

type fixture struct {
	provider *LocalProvider
	mailer   *captureMailer
	profiles *appprofiles.Service
	clock    *time.Time
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mem := store.NewMemoryStore()
	profiles := appprofiles.NewService(mem, nil)
	mailer := &captureMailer{}
	p := NewLocalProvider(LocalConfig{
		Tokens:      mem,
		Profiles:    profiles,
		Mailer:      mailer,
		RedirectURL: "https://www.getkanva.io/auth/callback",
		TokenTTL:    time.Hour,
		SessionTTL:  24 * time.Hour,
	})
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }
	return fixture{provider: p, mailer: mailer, profiles: profiles, clock: &now}
}

func TestMagicLinkRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.provider.SignInWithEmail(ctx, "Trainer@Club.ch"))
	link := f.mailer.links["trainer@club.ch"]
	assert.Contains(t, link, "https://www.getkanva.io/auth/callback?token=")

	sess, err := f.provider.VerifyOneTimeToken(ctx, f.mailer.token(t, "trainer@club.ch"))
	require.NoError(t, err)
	assert.Equal(t, "trainer@club.ch", sess.Email)
	assert.NotEmpty(t, sess.AccessToken)
	assert.True(t, sess.ExpiresAt.Equal(f.clock.Add(24*time.Hour)))

	current, err := f.provider.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, sess.UserID, current.UserID)

	authed, err := f.provider.Authenticate(ctx, sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, authed.UserID)
}

func TestVerifyTokenOnlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.provider.SignInWithEmail(ctx, "a@club.ch"))
	tok := f.mailer.token(t, "a@club.ch")

	_, err := f.provider.VerifyOneTimeToken(ctx, tok)
	require.NoError(t, err)
	_, err = f.provider.VerifyOneTimeToken(ctx, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.provider.VerifyOneTimeToken(ctx, "made-up")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.provider.SignInWithEmail(ctx, "late@club.ch"))

	later := f.clock.Add(2 * time.Hour)
	f.provider.now = func() time.Time { return later }

	_, err := f.provider.VerifyOneTimeToken(ctx, f.mailer.token(t, "late@club.ch"))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSignInRejectsInvalidEmail(t *testing.T) {
	f := newFixture(t)
	err := f.provider.SignInWithEmail(context.Background(), "nope")
	assert.ErrorIs(t, err, appprofiles.ErrInvalidEmail)
}

func TestSessionChangeSubscribers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var mu sync.Mutex
	var seen []*Session
	unsubscribe := f.provider.OnSessionChange(func(s *Session) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	require.NoError(t, f.provider.SignInWithEmail(ctx, "sub@club.ch"))
	sess, err := f.provider.VerifyOneTimeToken(ctx, f.mailer.token(t, "sub@club.ch"))
	require.NoError(t, err)
	require.NoError(t, f.provider.SignOut(ctx))

	mu.Lock()
	require.Len(t, seen, 2)
	assert.Equal(t, sess.UserID, seen[0].UserID)
	assert.Nil(t, seen[1])
	mu.Unlock()

	_, err = f.provider.Authenticate(ctx, sess.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken, "sign out revokes the access token")

	unsubscribe()
	unsubscribe()
	require.NoError(t, f.provider.SignInWithEmail(ctx, "sub@club.ch"))
	_, err = f.provider.VerifyOneTimeToken(ctx, f.mailer.token(t, "sub@club.ch"))
	require.NoError(t, err)
	mu.Lock()
	assert.Len(t, seen, 2, "unsubscribed callbacks must not fire")
	mu.Unlock()
}

func TestCurrentSessionExpires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.provider.SignInWithEmail(ctx, "x@club.ch"))
	_, err := f.provider.VerifyOneTimeToken(ctx, f.mailer.token(t, "x@club.ch"))
	require.NoError(t, err)

	later := f.clock.Add(25 * time.Hour)
	f.provider.now = func() time.Time { return later }
	current, err := f.provider.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSignOutWithoutSessionIsNoop(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.provider.SignOut(context.Background()))
}

func TestLogMailerWithoutLogger(t *testing.T) {
	err := LogMailer{}.SendMagicLink(context.Background(), "coach@club.ch", "https://www.getkanva.io/auth/callback?token=x")
	assert.NoError(t, err)
}
