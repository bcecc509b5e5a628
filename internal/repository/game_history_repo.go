package repository

import (
	"context"

	"casino_arcade/internal/domain"
)

// добавляет запись истории игры
func (s *MemStorage) CreateGameHistory(ctx context.Context, in domain.InsertGameHistory) (domain.GameHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertGameHistoryLocked(in), nil
}

// история пользователя в порядке добавления
func (s *MemStorage) GetGameHistoryByUserID(ctx context.Context, userID int64) ([]domain.GameHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GameHistory, 0)
	for id := int64(1); id <= s.gameHistoryID; id++ {
		if h, ok := s.gameHistory[id]; ok && h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

// вызывать только под s.mu.Lock
func (s *MemStorage) insertGameHistoryLocked(in domain.InsertGameHistory) domain.GameHistory {
	h := domain.GameHistory{
		UserID:   in.UserID,
		GameType: in.GameType,
		Bet:      in.Bet,
		Won:      in.Won,
	}
	if in.WinAmount != nil {
		h.WinAmount = *in.WinAmount
	}
	if in.PlayedAt != nil {
		h.PlayedAt = *in.PlayedAt
	} else {
		h.PlayedAt = s.now()
	}

	s.gameHistoryID++
	h.ID = s.gameHistoryID
	s.gameHistory[h.ID] = &h
	return h
}
