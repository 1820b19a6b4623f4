// Package storetest holds the behavior every store.Store implementation must share.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/club-studio/internal/domain/profiles"
	"github.com/preston-bernstein/club-studio/internal/store"
)

// Run exercises s against the store contract. s must start empty.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("profiles", func(t *testing.T) {
		p := profiles.Profile{ID: "p-1", Email: "Anna@Example.ch", CreatedAt: created, UpdatedAt: created}
		require.NoError(t, s.CreateProfile(ctx, p))

		dup := profiles.Profile{ID: "p-2", Email: "anna@example.ch", CreatedAt: created, UpdatedAt: created}
		assert.ErrorIs(t, s.CreateProfile(ctx, dup), store.ErrConflict)

		got, err := s.GetProfile(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Anna@Example.ch", got.Email)
		assert.True(t, got.CreatedAt.Equal(created))

		byEmail, err := s.GetProfileByEmail(ctx, " ANNA@example.ch ")
		require.NoError(t, err)
		assert.Equal(t, "p-1", byEmail.ID)

		got.FullName = "Anna Muster"
		got.AvatarURL = "https://img.example/anna.png"
		got.Email = "changed@example.ch"
		got.UpdatedAt = created.Add(time.Hour)
		require.NoError(t, s.UpdateProfile(ctx, got))

		updated, err := s.GetProfile(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Anna Muster", updated.FullName)
		assert.Equal(t, "https://img.example/anna.png", updated.AvatarURL)
		assert.Equal(t, "Anna@Example.ch", updated.Email, "email is immutable")
		assert.True(t, updated.UpdatedAt.Equal(created.Add(time.Hour)))

		_, err = s.GetProfile(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.ErrorIs(t, s.UpdateProfile(ctx, profiles.Profile{ID: "missing"}), store.ErrNotFound)
	})

	t.Run("tokens", func(t *testing.T) {
		tok := store.Token{
			Value:     "tok-1",
			Kind:      store.TokenMagicLink,
			ProfileID: "p-1",
			Email:     "anna@example.ch",
			CreatedAt: created,
			ExpiresAt: created.Add(time.Hour),
		}
		require.NoError(t, s.SaveToken(ctx, tok))
		assert.ErrorIs(t, s.SaveToken(ctx, tok), store.ErrConflict)

		_, err := s.GetToken(ctx, "tok-1", store.TokenSession)
		assert.ErrorIs(t, err, store.ErrNotFound, "kind must match")

		got, err := s.GetToken(ctx, "tok-1", store.TokenMagicLink)
		require.NoError(t, err)
		assert.Equal(t, "p-1", got.ProfileID)
		assert.True(t, got.ExpiresAt.Equal(tok.ExpiresAt))

		consumed, err := s.ConsumeToken(ctx, "tok-1", store.TokenMagicLink)
		require.NoError(t, err)
		assert.Equal(t, "anna@example.ch", consumed.Email)

		_, err = s.ConsumeToken(ctx, "tok-1", store.TokenMagicLink)
		assert.True(t, errors.Is(err, store.ErrNotFound), "second consume must fail, got %v", err)

		session := store.Token{Value: "sess-1", Kind: store.TokenSession, ProfileID: "p-1", CreatedAt: created, ExpiresAt: created.Add(24 * time.Hour)}
		require.NoError(t, s.SaveToken(ctx, session))
		require.NoError(t, s.DeleteToken(ctx, "sess-1"))
		_, err = s.GetToken(ctx, "sess-1", store.TokenSession)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NoError(t, s.DeleteToken(ctx, "never-existed"))
	})
}
