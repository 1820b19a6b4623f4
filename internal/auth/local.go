package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	domainprofiles "github.com/preston-bernstein/club-studio/internal/domain/profiles"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/store"
)

const (
	DefaultTokenTTL   = time.Hour
	DefaultSessionTTL = 30 * 24 * time.Hour
)

// ProfileEnsurer creates the profile of a first-time user.
type ProfileEnsurer interface {
	Ensure(ctx context.Context, email string) (domainprofiles.Profile, error)
}

// LocalConfig wires a LocalProvider.
type LocalConfig struct {
	Tokens      store.TokenStore
	Profiles    ProfileEnsurer
	Mailer      Mailer
	Logger      *slog.Logger
	RedirectURL string
	TokenTTL    time.Duration
	SessionTTL  time.Duration
}

// LocalProvider implements Provider on the token store. It tracks one current session,
// the way a single client does, and can also authenticate arbitrary access tokens.
type LocalProvider struct {
	tokens      store.TokenStore
	profiles    ProfileEnsurer
	mailer      Mailer
	logger      *slog.Logger
	redirectURL string
	tokenTTL    time.Duration
	sessionTTL  time.Duration
	now         func() time.Time
	newToken    func() string

	mu          sync.Mutex
	current     *Session
	subscribers map[int]func(*Session)
	nextSub     int
}

var _ Provider = (*LocalProvider)(nil)

// NewLocalProvider constructs a LocalProvider. Zero TTLs fall back to the defaults.
func NewLocalProvider(cfg LocalConfig) *LocalProvider {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.Mailer == nil {
		cfg.Mailer = LogMailer{Logger: cfg.Logger}
	}
	return &LocalProvider{
		tokens:      cfg.Tokens,
		profiles:    cfg.Profiles,
		mailer:      cfg.Mailer,
		logger:      cfg.Logger,
		redirectURL: cfg.RedirectURL,
		tokenTTL:    cfg.TokenTTL,
		sessionTTL:  cfg.SessionTTL,
		now:         time.Now,
		newToken:    uuid.NewString,
		subscribers: make(map[int]func(*Session)),
	}
}

// CurrentSession returns the active session, or nil once it has expired or after sign out.
func (p *LocalProvider) CurrentSession(ctx context.Context) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil || !p.now().Before(p.current.ExpiresAt) {
		return nil, nil
	}
	s := *p.current
	return &s, nil
}

func (p *LocalProvider) OnSessionChange(fn func(*Session)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subscribers, id)
			p.mu.Unlock()
		})
	}
}

// SignInWithEmail creates the user if needed and sends a one-time link.
func (p *LocalProvider) SignInWithEmail(ctx context.Context, email string) error {
	profile, err := p.profiles.Ensure(ctx, email)
	if err != nil {
		return err
	}
	now := p.now().UTC()
	tok := store.Token{
		Value:     p.newToken(),
		Kind:      store.TokenMagicLink,
		ProfileID: profile.ID,
		Email:     profile.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(p.tokenTTL),
	}
	if err := p.tokens.SaveToken(ctx, tok); err != nil {
		return fmt.Errorf("save sign-in token: %w", err)
	}
	link, err := magicLink(p.redirectURL, tok.Value)
	if err != nil {
		return err
	}
	return p.mailer.SendMagicLink(ctx, profile.Email, link)
}

// VerifyOneTimeToken exchanges a magic-link token for a session. Tokens work once.
func (p *LocalProvider) VerifyOneTimeToken(ctx context.Context, token string) (*Session, error) {
	tok, err := p.tokens.ConsumeToken(ctx, token, store.TokenMagicLink)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	now := p.now().UTC()
	if tok.Expired(now) {
		return nil, ErrTokenExpired
	}

	sess := store.Token{
		Value:     p.newToken(),
		Kind:      store.TokenSession,
		ProfileID: tok.ProfileID,
		Email:     tok.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(p.sessionTTL),
	}
	if err := p.tokens.SaveToken(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	session := sessionFromToken(sess)
	logging.Info(logging.FromContext(ctx, p.logger), "signed in", slog.String("profile_id", session.UserID))
	p.setCurrent(&session)
	return &session, nil
}

// Authenticate resolves an access token issued by VerifyOneTimeToken.
func (p *LocalProvider) Authenticate(ctx context.Context, accessToken string) (Session, error) {
	if accessToken == "" {
		return Session{}, ErrInvalidToken
	}
	tok, err := p.tokens.GetToken(ctx, accessToken, store.TokenSession)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidToken
		}
		return Session{}, err
	}
	if tok.Expired(p.now()) {
		return Session{}, ErrTokenExpired
	}
	return sessionFromToken(tok), nil
}

// SignOut revokes the current session, if any, and notifies subscribers.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()
	if current == nil {
		return nil
	}
	if err := p.tokens.DeleteToken(ctx, current.AccessToken); err != nil {
		return err
	}
	p.setCurrent(nil)
	return nil
}

// Revoke deletes an access token without touching the current session.
func (p *LocalProvider) Revoke(ctx context.Context, accessToken string) error {
	return p.tokens.DeleteToken(ctx, accessToken)
}

func (p *LocalProvider) setCurrent(s *Session) {
	p.mu.Lock()
	p.current = s
	subs := make([]func(*Session), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		if s == nil {
			fn(nil)
			continue
		}
		cp := *s
		fn(&cp)
	}
}

func sessionFromToken(t store.Token) Session {
	return Session{
		UserID:      t.ProfileID,
		Email:       t.Email,
		AccessToken: t.Value,
		ExpiresAt:   t.ExpiresAt,
	}
}

func magicLink(redirect, token string) (string, error) {
	u, err := url.Parse(redirect)
	if err != nil {
		return "", fmt.Errorf("invalid redirect url %q: %w", redirect, err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
