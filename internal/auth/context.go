package auth

import (
	"context"
	"log/slog"
	"sync"

	domainprofiles "github.com/preston-bernstein/club-studio/internal/domain/profiles"
	"github.com/preston-bernstein/club-studio/internal/logging"
)

// ProfileLoader loads the profile of a signed-in user.
type ProfileLoader interface {
	Load(ctx context.Context, userID string) (domainprofiles.Profile, error)
}

// Context is the session capability passed explicitly to whoever needs the signed-in user.
// Start subscribes to session changes and Close unsubscribes; both belong to the root scope.
type Context struct {
	provider Provider
	profiles ProfileLoader
	logger   *slog.Logger

	mu          sync.RWMutex
	session     *Session
	profile     *domainprofiles.Profile
	unsubscribe func()
}

// NewContext builds an unstarted Context.
func NewContext(provider Provider, profiles ProfileLoader, logger *slog.Logger) *Context {
	return &Context{provider: provider, profiles: profiles, logger: logger}
}

// Start loads the initial session and follows later changes until Close.
func (c *Context) Start(ctx context.Context) error {
	sess, err := c.provider.CurrentSession(ctx)
	if err != nil {
		return err
	}
	c.apply(ctx, sess)

	bg := context.WithoutCancel(ctx)
	unsubscribe := c.provider.OnSessionChange(func(s *Session) {
		c.apply(bg, s)
	})

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
	return nil
}

// Close stops following session changes. Safe to call more than once.
func (c *Context) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// User returns the current session, nil when signed out.
func (c *Context) User() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Profile returns the signed-in user's profile when it could be loaded.
func (c *Context) Profile() *domainprofiles.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.profile == nil {
		return nil
	}
	p := *c.profile
	return &p
}

func (c *Context) HasUser() bool {
	return c.User() != nil
}

// RefreshProfile reloads the profile, e.g. after an update.
func (c *Context) RefreshProfile(ctx context.Context) {
	c.apply(ctx, c.User())
}

func (c *Context) apply(ctx context.Context, s *Session) {
	var profile *domainprofiles.Profile
	if s != nil && c.profiles != nil {
		p, err := c.profiles.Load(ctx, s.UserID)
		if err != nil {
			logging.Warn(logging.FromContext(ctx, c.logger), "profile load failed",
				slog.String("profile_id", s.UserID), slog.Any("error", err))
		} else {
			profile = &p
		}
	}

	c.mu.Lock()
	c.session = s
	c.profile = profile
	c.mu.Unlock()
}
