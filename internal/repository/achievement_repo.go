package repository

import (
	"context"

	"casino_arcade/internal/domain"
)

func (s *MemStorage) CreateAchievement(ctx context.Context, in domain.InsertAchievement) (domain.Achievement, error) {
	a := domain.Achievement{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
	}
	if in.Unlocked != nil {
		a.Unlocked = *in.Unlocked
	}
	if in.UnlockedAt != nil {
		t := *in.UnlockedAt
		a.UnlockedAt = &t
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.achievementID++
	a.ID = s.achievementID
	s.achievements[a.ID] = &a
	return copyAchievement(&a), nil
}

func (s *MemStorage) GetAchievementByID(ctx context.Context, id int64) (domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.achievements[id]
	if !ok {
		return domain.Achievement{}, ErrNotFound
	}
	return copyAchievement(a), nil
}

func (s *MemStorage) GetAchievementsByUserID(ctx context.Context, userID int64) ([]domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Achievement, 0)
	for id := int64(1); id <= s.achievementID; id++ {
		if a, ok := s.achievements[id]; ok && a.UserID == userID {
			out = append(out, copyAchievement(a))
		}
	}
	return out, nil
}

// отмечает достижение открытым с текущим временем
func (s *MemStorage) UnlockAchievement(ctx context.Context, id int64) (domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.achievements[id]
	if !ok {
		return domain.Achievement{}, ErrNotFound
	}
	now := s.now()
	a.Unlocked = true
	a.UnlockedAt = &now
	return copyAchievement(a), nil
}

// UnlockedAt указатель, наружу отдаем свою копию
func copyAchievement(a *domain.Achievement) domain.Achievement {
	out := *a
	if a.UnlockedAt != nil {
		t := *a.UnlockedAt
		out.UnlockedAt = &t
	}
	return out
}
