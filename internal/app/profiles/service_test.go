package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainprofiles "github.com/preston-bernstein/club-studio/internal/domain/profiles"
	"github.com/preston-bernstein/club-studio/internal/store"
)

func newTestService() (*Service, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	svc := NewService(mem, nil)
	fixed := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	n := 0
	svc.newID = func() string {
		n++
		return "user-" + string(rune('0'+n))
	}
	return svc, mem
}

func TestEnsureCreatesOnceAndReuses(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Ensure(ctx, " Coach@Club.ch ")
	require.NoError(t, err)
	assert.Equal(t, "user-1", first.ID)
	assert.Equal(t, "coach@club.ch", first.Email)

	again, err := svc.Ensure(ctx, "coach@club.ch")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestEnsureRejectsInvalidEmail(t *testing.T) {
	svc, _ := newTestService()
	for _, raw := range []string{"", "not-an-email", "Coach <coach@club.ch>"} {
		_, err := svc.Ensure(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidEmail, raw)
	}
}

func TestUpdateRequiresUser(t *testing.T) {
	svc, _ := newTestService()
	name := "Nora"
	_, err := svc.Update(context.Background(), "", domainprofiles.Update{FullName: &name})
	assert.ErrorIs(t, err, ErrNoUser)
	_, err = svc.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestUpdateAppliesFieldsAndStamps(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	p, err := svc.Ensure(ctx, "nora@club.ch")
	require.NoError(t, err)

	later := p.UpdatedAt.Add(time.Hour)
	svc.now = func() time.Time { return later }
	name := "Nora Keller"
	updated, err := svc.Update(ctx, p.ID, domainprofiles.Update{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Nora Keller", updated.FullName)
	assert.True(t, updated.UpdatedAt.Equal(later))

	loaded, err := svc.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nora Keller", loaded.FullName)
	assert.Equal(t, "", loaded.AvatarURL)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Update(context.Background(), "ghost", domainprofiles.Update{})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
