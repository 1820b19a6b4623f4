package store

import (
	"context"
	"strings"
	"sync"

	"github.com/preston-bernstein/club-studio/internal/domain/profiles"
)

// MemoryStore keeps profiles and tokens in memory. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]profiles.Profile
	byEmail  map[string]string
	tokens   map[string]Token
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]profiles.Profile),
		byEmail:  make(map[string]string),
		tokens:   make(map[string]Token),
	}
}

// GetProfile retrieves a profile by ID.
func (s *MemoryStore) GetProfile(ctx context.Context, id string) (profiles.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return profiles.Profile{}, ErrNotFound
	}
	return p, nil
}

// GetProfileByEmail retrieves a profile by its (case-insensitive) email.
func (s *MemoryStore) GetProfileByEmail(ctx context.Context, email string) (profiles.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return profiles.Profile{}, ErrNotFound
	}
	return s.profiles[id], nil
}

func (s *MemoryStore) CreateProfile(ctx context.Context, p profiles.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(p.Email)
	if _, ok := s.profiles[p.ID]; ok {
		return ErrConflict
	}
	if _, ok := s.byEmail[email]; ok {
		return ErrConflict
	}
	s.profiles[p.ID] = p
	s.byEmail[email] = p.ID
	return nil
}

func (s *MemoryStore) UpdateProfile(ctx context.Context, p profiles.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.profiles[p.ID]
	if !ok {
		return ErrNotFound
	}
	// Email is the sign-in identity and stays fixed.
	p.Email = prev.Email
	p.CreatedAt = prev.CreatedAt
	s.profiles[p.ID] = p
	return nil
}

func (s *MemoryStore) SaveToken(ctx context.Context, t Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[t.Value]; ok {
		return ErrConflict
	}
	s.tokens[t.Value] = t
	return nil
}

func (s *MemoryStore) GetToken(ctx context.Context, value string, kind TokenKind) (Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tokens[value]
	if !ok || t.Kind != kind {
		return Token{}, ErrNotFound
	}
	return t, nil
}

func (s *MemoryStore) ConsumeToken(ctx context.Context, value string, kind TokenKind) (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[value]
	if !ok || t.Kind != kind {
		return Token{}, ErrNotFound
	}
	delete(s.tokens, value)
	return t, nil
}

func (s *MemoryStore) DeleteToken(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, value)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
