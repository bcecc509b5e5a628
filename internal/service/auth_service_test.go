package service

import (
	"context"
	"sync"
	"testing"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserWithAchievements(t *testing.T) {
	store := repository.NewMemStorage()
	svc := NewAuthService(store)
	ctx := context.Background()

	u, err := svc.Register(ctx, "bob", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, domain.DefaultCoins, u.Coins)

	achievements, err := store.GetAchievementsByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, achievements, 3)
	for _, a := range achievements {
		assert.False(t, a.Unlocked)
		assert.Nil(t, a.UnlockedAt)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(repository.NewMemStorage())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "x")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = svc.Register(ctx, "x", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Register(ctx, "bob", "one")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob", "two")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_ConcurrentSameName(t *testing.T) {
	svc := NewAuthService(repository.NewMemStorage())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Register(context.Background(), "dup", "pw"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)
}

func TestLogin(t *testing.T) {
	store := repository.NewMemStorage()
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))
	svc := NewAuthService(store)

	u, err := svc.Login(ctx, repository.DemoUsername, repository.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), u.Coins)

	_, err = svc.Login(ctx, repository.DemoUsername, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "ghost", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestCurrentUser(t *testing.T) {
	svc := NewAuthService(repository.NewMemStorage())
	ctx := context.Background()

	u, err := svc.Register(ctx, "bob", "pw")
	require.NoError(t, err)

	got, err := svc.CurrentUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = svc.CurrentUser(ctx, u.ID+1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAchievementUnlock(t *testing.T) {
	store := repository.NewMemStorage()
	auth := NewAuthService(store)
	svc := NewAchievementService(store)
	ctx := context.Background()

	alice, err := auth.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	bob, err := auth.Register(ctx, "bob", "pw")
	require.NoError(t, err)

	list, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	target := list[0]

	_, _, err = svc.Unlock(ctx, bob.ID, target.ID)
	assert.ErrorIs(t, err, ErrAchievementNotFound)

	a, changed, err := svc.Unlock(ctx, alice.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, a.Unlocked)
	require.NotNil(t, a.UnlockedAt)

	again, changed, err := svc.Unlock(ctx, alice.ID, target.ID)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, *a.UnlockedAt, *again.UnlockedAt)

	_, _, err = svc.Unlock(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, ErrAchievementNotFound)
}
