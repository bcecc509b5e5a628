package repository

import (
	"errors"
	"sync"
	"time"

	"casino_arcade/internal/domain"
)

var (
	ErrNotFound = errors.New("запись не найдена")
	ErrTxDone   = errors.New("транзакция уже завершена")
)

// Хранилище в памяти. Один экземпляр создается при старте и передается
// сервисам и хендлерам.
//
// Порядок блокировок: сначала мьютекс пользователя, потом mu.
type MemStorage struct {
	mu sync.RWMutex

	users        map[int64]*domain.User
	categories   map[int64]*domain.Category
	games        map[int64]*domain.Game
	achievements map[int64]*domain.Achievement
	gameHistory  map[int64]*domain.GameHistory

	// счетчики id, у каждой сущности свой, начинаются с 1
	userID        int64
	categoryID    int64
	gameID        int64
	achievementID int64
	gameHistoryID int64

	// сериализует изменения одного пользователя
	userLocks map[int64]*sync.Mutex

	now func() time.Time
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:        make(map[int64]*domain.User),
		categories:   make(map[int64]*domain.Category),
		games:        make(map[int64]*domain.Game),
		achievements: make(map[int64]*domain.Achievement),
		gameHistory:  make(map[int64]*domain.GameHistory),
		userLocks:    make(map[int64]*sync.Mutex),
		now:          time.Now,
	}
}

// берет мьютекс пользователя, возвращает функцию для его освобождения
func (s *MemStorage) lockUser(userID int64) (func(), error) {
	s.mu.RLock()
	l, ok := s.userLocks[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	l.Lock()
	return l.Unlock, nil
}
