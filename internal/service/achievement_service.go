package service

import (
	"context"
	"errors"
	"fmt"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/repository"
)

var ErrAchievementNotFound = errors.New("достижение не найдено")

type AchievementService struct {
	store *repository.MemStorage
}

func NewAchievementService(store *repository.MemStorage) *AchievementService {
	return &AchievementService{store: store}
}

func (s *AchievementService) List(ctx context.Context, userID int64) ([]domain.Achievement, error) {
	return s.store.GetAchievementsByUserID(ctx, userID)
}

// Unlock открывает достижение игрока. Чужое достижение не отличается
// от несуществующего. Повторное открытие возвращает запись без изменений,
// changed=false.
func (s *AchievementService) Unlock(ctx context.Context, userID, achievementID int64) (a domain.Achievement, changed bool, err error) {
	a, err = s.store.GetAchievementByID(ctx, achievementID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Achievement{}, false, ErrAchievementNotFound
		}
		return domain.Achievement{}, false, err
	}
	if a.UserID != userID {
		return domain.Achievement{}, false, ErrAchievementNotFound
	}
	if a.Unlocked {
		return a, false, nil
	}

	a, err = s.store.UnlockAchievement(ctx, achievementID)
	if err != nil {
		return domain.Achievement{}, false, fmt.Errorf("unlock achievement: %w", err)
	}
	return a, true, nil
}
