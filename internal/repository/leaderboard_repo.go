package repository

import (
	"context"
	"sort"

	"casino_arcade/internal/domain"
)

// строка рейтинга
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Coins    int64  `json:"coins"`
	Level    int64  `json:"level"`
}

// игроки по убыванию монет, при равенстве выше уровень, затем меньший id
func (s *MemStorage) rankedUsersLocked() []domain.User {
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		a, b := users[i], users[j]
		if a.Coins != b.Coins {
			return a.Coins > b.Coins
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.ID < b.ID
	})
	return users
}

// список limit лучших игроков
func (s *MemStorage) GetTopUsers(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	ranked := s.rankedUsersLocked()
	s.mu.RUnlock()

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]LeaderboardEntry, 0, len(ranked))
	for i, u := range ranked {
		out = append(out, LeaderboardEntry{
			Rank:     i + 1,
			ID:       u.ID,
			Username: u.Username,
			Coins:    u.Coins,
			Level:    u.Level,
		})
	}
	return out, nil
}

// место пользователя в рейтинге, с 1
func (s *MemStorage) GetUserRank(ctx context.Context, userID int64) (LeaderboardEntry, error) {
	s.mu.RLock()
	ranked := s.rankedUsersLocked()
	s.mu.RUnlock()

	for i, u := range ranked {
		if u.ID == userID {
			return LeaderboardEntry{
				Rank:     i + 1,
				ID:       u.ID,
				Username: u.Username,
				Coins:    u.Coins,
				Level:    u.Level,
			}, nil
		}
	}
	return LeaderboardEntry{}, ErrNotFound
}
