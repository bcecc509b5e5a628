package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("требуются имя пользователя и пароль")
	ErrUsernameTaken      = errors.New("имя пользователя уже занято")
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
)

type AuthService struct {
	store *repository.MemStorage
	// проверка уникальности и вставка должны идти вместе
	registerMu sync.Mutex
}

func NewAuthService(store *repository.MemStorage) *AuthService {
	return &AuthService{store: store}
}

// регистрирует игрока со стартовым балансом и набором закрытых достижений
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return domain.User{}, fmt.Errorf("lookup username: %w", err)
	}

	user, err := s.store.CreateUser(ctx, domain.InsertUser{
		Username: username,
		Password: password,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	for _, a := range repository.DefaultAchievements(user.ID) {
		if _, err := s.store.CreateAchievement(ctx, a); err != nil {
			return domain.User{}, fmt.Errorf("create achievement: %w", err)
		}
	}
	return user, nil
}

// проверяет логин и пароль
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup username: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// пользователь текущей сессии
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
