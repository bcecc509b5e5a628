package repository

import (
	"context"
	"sync"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/game"
)

// создает пользователя, незаданные поля заполняются значениями по умолчанию.
// Уникальность username проверяет вызывающий код.
func (s *MemStorage) CreateUser(ctx context.Context, in domain.InsertUser) (domain.User, error) {
	user := domain.User{
		Username: in.Username,
		Password: in.Password,
		Coins:    domain.DefaultCoins,
		Level:    domain.DefaultLevel,
		XP:       domain.DefaultXP,
	}
	if in.Coins != nil {
		user.Coins = *in.Coins
	}
	if in.Level != nil {
		user.Level = *in.Level
	}
	if in.XP != nil {
		user.XP = *in.XP
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	user.ID = s.userID
	s.users[user.ID] = &user
	s.userLocks[user.ID] = new(sync.Mutex)

	return user, nil
}

func (s *MemStorage) GetUser(ctx context.Context, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return *u, nil
}

// линейный поиск, первое совпадение по порядку id
func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := int64(1); id <= s.userID; id++ {
		if u, ok := s.users[id]; ok && u.Username == username {
			return *u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// добавляет delta к монетам (может быть отрицательной). Без ограничений снизу,
// достаточность средств проверяет вызывающий код
func (s *MemStorage) UpdateUserCoins(ctx context.Context, userID int64, delta int64) (domain.User, error) {
	return s.updateUser(userID, func(u *domain.User) {
		u.Coins += delta
	})
}

// начисляет опыт и повышает уровень по правилам game.ApplyXP
func (s *MemStorage) UpdateUserXP(ctx context.Context, userID int64, delta int64) (domain.User, error) {
	return s.updateUser(userID, func(u *domain.User) {
		u.Level, u.XP = game.ApplyXP(u.Level, u.XP, delta)
	})
}

func (s *MemStorage) updateUser(userID int64, apply func(u *domain.User)) (domain.User, error) {
	unlock, err := s.lockUser(userID)
	if err != nil {
		return domain.User{}, err
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	apply(u)
	return *u, nil
}
