package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"casino_arcade/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *MemStorage {
	t.Helper()
	s := NewMemStorage()
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestCreateUser_Defaults(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, domain.InsertUser{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, int64(1000), u.Coins)
	assert.Equal(t, int64(1), u.Level)
	assert.Equal(t, int64(0), u.XP)

	v, err := s.CreateUser(ctx, domain.InsertUser{Username: "bob", Password: "pw", Coins: ptr(int64(5)), Level: ptr(int64(3)), XP: ptr(int64(7))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.ID)
	assert.Equal(t, int64(5), v.Coins)
	assert.Equal(t, int64(3), v.Level)
	assert.Equal(t, int64(7), v.XP)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByUsername_FirstMatch(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, _ := s.CreateUser(ctx, domain.InsertUser{Username: "dup", Password: "a"})
	_, _ = s.CreateUser(ctx, domain.InsertUser{Username: "dup", Password: "b"})

	u, err := s.GetUserByUsername(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, first.ID, u.ID)
	assert.Equal(t, "a", u.Password)
}

func TestGetUser_ReturnsCopy(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	u, _ := s.CreateUser(ctx, domain.InsertUser{Username: "alice"})

	got, _ := s.GetUser(ctx, u.ID)
	got.Coins = 0

	again, _ := s.GetUser(ctx, u.ID)
	assert.Equal(t, int64(1000), again.Coins)
}

func TestUpdateUserCoins(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	u, _ := s.CreateUser(ctx, domain.InsertUser{Username: "alice", Coins: ptr(int64(30))})

	u, err := s.UpdateUserCoins(ctx, u.ID, -50)
	require.NoError(t, err)
	assert.Equal(t, int64(-20), u.Coins, "хранилище не ограничивает баланс снизу")

	_, err = s.UpdateUserCoins(ctx, 99, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserXP_Rollover(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	u, _ := s.CreateUser(ctx, domain.InsertUser{Username: "alice", XP: ptr(int64(90))})

	u, err := s.UpdateUserXP(ctx, u.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.Level)
	assert.Equal(t, int64(10), u.XP)

	_, err = s.UpdateUserXP(ctx, 99, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserCoins_Concurrent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	u, _ := s.CreateUser(ctx, domain.InsertUser{Username: "alice", Coins: ptr(int64(0))})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.UpdateUserCoins(ctx, u.ID, 1)
		}()
	}
	wg.Wait()

	got, _ := s.GetUser(ctx, u.ID)
	assert.Equal(t, int64(100), got.Coins)
}

func TestCategoriesAndGames(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	c1, _ := s.CreateCategory(ctx, domain.InsertCategory{Name: "Slots", IconName: "i"})
	c2, _ := s.CreateCategory(ctx, domain.InsertCategory{Name: "Cards", IconName: "j", GamesCount: ptr(3)})
	assert.Equal(t, 0, c1.GamesCount)
	assert.Equal(t, 3, c2.GamesCount)

	g1, _ := s.CreateGame(ctx, domain.InsertGame{Name: "a", CategoryID: c1.ID, Type: domain.GameTypeSlots})
	g2, _ := s.CreateGame(ctx, domain.InsertGame{Name: "b", CategoryID: c2.ID, Type: domain.GameTypePoker, Featured: ptr(true), Rating: ptr(10)})
	g3, _ := s.CreateGame(ctx, domain.InsertGame{Name: "c", CategoryID: c1.ID, Type: domain.GameTypeRoulette})
	assert.Equal(t, 45, g1.Rating)
	assert.False(t, g1.Featured)
	assert.Equal(t, 10, g2.Rating)

	byCat, err := s.GetGamesByCategory(ctx, c1.ID)
	require.NoError(t, err)
	require.Len(t, byCat, 2)
	assert.Equal(t, g1.ID, byCat[0].ID)
	assert.Equal(t, g3.ID, byCat[1].ID)

	featured, _ := s.GetFeaturedGames(ctx)
	require.Len(t, featured, 1)
	assert.Equal(t, g2.ID, featured[0].ID)

	empty, _ := s.GetGamesByCategory(ctx, 77)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	all, _ := s.GetGames(ctx)
	assert.Len(t, all, 3)

	cats, _ := s.GetCategories(ctx)
	assert.Equal(t, []int64{c1.ID, c2.ID}, []int64{cats[0].ID, cats[1].ID})

	_, err = s.GetGameByID(ctx, 100)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetCategoryByID(ctx, 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAchievements_Unlock(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	a, err := s.CreateAchievement(ctx, domain.InsertAchievement{UserID: 1, Name: "n", Description: "d"})
	require.NoError(t, err)
	assert.False(t, a.Unlocked)
	assert.Nil(t, a.UnlockedAt)

	_, _ = s.CreateAchievement(ctx, domain.InsertAchievement{UserID: 2, Name: "other"})

	a, err = s.UnlockAchievement(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, a.Unlocked)
	require.NotNil(t, a.UnlockedAt)
	assert.Equal(t, s.now(), *a.UnlockedAt)

	list, _ := s.GetAchievementsByUserID(ctx, 1)
	require.Len(t, list, 1)
	assert.True(t, list[0].Unlocked)

	_, err = s.UnlockAchievement(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameHistory_AppendOnly(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	h1, _ := s.CreateGameHistory(ctx, domain.InsertGameHistory{UserID: 1, GameType: domain.GameTypeSlots, Bet: 10})
	h2, _ := s.CreateGameHistory(ctx, domain.InsertGameHistory{UserID: 2, GameType: domain.GameTypePoker, Bet: 5, Won: true, WinAmount: ptr(int64(15))})
	h3, _ := s.CreateGameHistory(ctx, domain.InsertGameHistory{UserID: 1, GameType: domain.GameTypeRoulette, Bet: 20})

	assert.Less(t, h1.ID, h2.ID)
	assert.Less(t, h2.ID, h3.ID)
	assert.Equal(t, int64(0), h1.WinAmount)
	assert.Equal(t, s.now(), h1.PlayedAt)

	list, _ := s.GetGameHistoryByUserID(ctx, 1)
	require.Len(t, list, 2)
	assert.Equal(t, h1.ID, list[0].ID)
	assert.Equal(t, h3.ID, list[1].ID)
}

func TestSeed(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx))

	u, err := s.GetUserByUsername(ctx, DemoUsername)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), u.Coins)

	cats, _ := s.GetCategories(ctx)
	assert.Len(t, cats, 4)

	featured, _ := s.GetFeaturedGames(ctx)
	assert.Len(t, featured, 4)

	cards, _ := s.GetGamesByCategory(ctx, cats[1].ID)
	assert.Len(t, cards, 2)

	achievements, _ := s.GetAchievementsByUserID(ctx, u.ID)
	require.Len(t, achievements, 3)
	assert.True(t, achievements[0].Unlocked)
	assert.False(t, achievements[1].Unlocked)
}
