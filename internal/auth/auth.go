// Package auth provides magic-link sign in and the session capability handed to the
// parts of the app that need to know who is signed in.
package auth

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidToken is returned for unknown or already used tokens.
	ErrInvalidToken = errors.New("invalid or already used token")
	// ErrTokenExpired is returned for tokens past their deadline.
	ErrTokenExpired = errors.New("token expired")
)

// Session identifies a signed-in user.
type Session struct {
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Provider is the auth collaborator. A nil *Session means signed out.
type Provider interface {
	CurrentSession(ctx context.Context) (*Session, error)
	// OnSessionChange registers fn for every sign in and sign out and returns its unsubscribe func.
	OnSessionChange(fn func(*Session)) (unsubscribe func())
	SignInWithEmail(ctx context.Context, email string) error
	SignOut(ctx context.Context) error
	VerifyOneTimeToken(ctx context.Context, token string) (*Session, error)
}
