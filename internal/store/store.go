// Package store persists profiles and auth tokens.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/preston-bernstein/club-studio/internal/domain/profiles"
)

var (
	// ErrNotFound is returned when a record does not exist (or a token was already used).
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique key (profile email, token value) is taken.
	ErrConflict = errors.New("already exists")
)

// TokenKind distinguishes one-time sign-in tokens from session access tokens.
type TokenKind string

const (
	TokenMagicLink TokenKind = "magic_link"
	TokenSession   TokenKind = "session"
)

// Token is an opaque credential bound to a profile.
type Token struct {
	Value     string
	Kind      TokenKind
	ProfileID string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is no longer valid at now.
func (t Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// ProfileStore reads and writes profiles.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (profiles.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (profiles.Profile, error)
	CreateProfile(ctx context.Context, p profiles.Profile) error
	UpdateProfile(ctx context.Context, p profiles.Profile) error
}

// TokenStore keeps issued tokens.
type TokenStore interface {
	SaveToken(ctx context.Context, t Token) error
	GetToken(ctx context.Context, value string, kind TokenKind) (Token, error)
	// ConsumeToken returns the token and removes it, so a second call yields ErrNotFound.
	ConsumeToken(ctx context.Context, value string, kind TokenKind) (Token, error)
	DeleteToken(ctx context.Context, value string) error
}

// Store is everything the auth and profile services need.
type Store interface {
	ProfileStore
	TokenStore
	Close() error
}
