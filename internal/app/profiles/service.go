// Package profiles manages the account profile of signed-in users.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	domainprofiles "github.com/preston-bernstein/club-studio/internal/domain/profiles"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/store"
)

var (
	// ErrNoUser is returned for profile operations without a signed-in user.
	ErrNoUser = errors.New("no signed-in user")
	// ErrInvalidEmail is returned when an address cannot be parsed.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Service coordinates profile operations using a ProfileStore.
type Service struct {
	store  store.ProfileStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService constructs a Service with the provided store.
func NewService(s store.ProfileStore, logger *slog.Logger) *Service {
	return &Service{
		store:  s,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

// Load returns the profile of userID.
func (s *Service) Load(ctx context.Context, userID string) (domainprofiles.Profile, error) {
	if userID == "" {
		return domainprofiles.Profile{}, ErrNoUser
	}
	return s.store.GetProfile(ctx, userID)
}

// Update applies the editable fields to the profile of userID.
func (s *Service) Update(ctx context.Context, userID string, upd domainprofiles.Update) (domainprofiles.Profile, error) {
	if userID == "" {
		return domainprofiles.Profile{}, ErrNoUser
	}
	current, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return domainprofiles.Profile{}, err
	}
	next := upd.Apply(current)
	next.UpdatedAt = s.now().UTC()
	if err := s.store.UpdateProfile(ctx, next); err != nil {
		return domainprofiles.Profile{}, err
	}
	logging.Info(logging.FromContext(ctx, s.logger), "profile updated", slog.String("profile_id", userID))
	return next, nil
}

// Ensure returns the profile registered for email, creating it on first sign in.
func (s *Service) Ensure(ctx context.Context, email string) (domainprofiles.Profile, error) {
	addr, err := NormalizeEmail(email)
	if err != nil {
		return domainprofiles.Profile{}, err
	}
	existing, err := s.store.GetProfileByEmail(ctx, addr)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domainprofiles.Profile{}, err
	}

	now := s.now().UTC()
	p := domainprofiles.Profile{
		ID:        s.newID(),
		Email:     addr,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateProfile(ctx, p); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost a race with a concurrent sign in for the same address.
			return s.store.GetProfileByEmail(ctx, addr)
		}
		return domainprofiles.Profile{}, err
	}
	logging.Info(logging.FromContext(ctx, s.logger), "profile created", slog.String("profile_id", p.ID))
	return p, nil
}

// NormalizeEmail validates a bare address and lower-cases it.
func NormalizeEmail(raw string) (string, error) {
	parsed, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || parsed.Name != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return strings.ToLower(parsed.Address), nil
}
