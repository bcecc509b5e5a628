package repository

import (
	"context"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/game"
)

// Транзакция над одним пользователем. Держит мьютекс пользователя
// от BeginTx до Commit/Rollback и работает с копией записи:
// до Commit ничего не видно снаружи.
type Tx struct {
	s       *MemStorage
	user    domain.User
	history []domain.InsertGameHistory
	created []domain.GameHistory
	unlock  func()
	done    bool
}

// открывает транзакцию и блокирует пользователя (аналог SELECT ... FOR UPDATE)
func (s *MemStorage) BeginTx(ctx context.Context, userID int64) (*Tx, error) {
	unlock, err := s.lockUser(userID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		unlock()
		return nil, err
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		unlock()
		return nil, err
	}

	return &Tx{s: s, user: user, unlock: unlock}, nil
}

// текущее состояние пользователя внутри транзакции
func (tx *Tx) User() domain.User {
	return tx.user
}

func (tx *Tx) UpdateCoins(delta int64) domain.User {
	tx.user.Coins += delta
	return tx.user
}

func (tx *Tx) UpdateXP(delta int64) domain.User {
	tx.user.Level, tx.user.XP = game.ApplyXP(tx.user.Level, tx.user.XP, delta)
	return tx.user
}

// запись попадет в историю при Commit, id назначается там же
func (tx *Tx) CreateGameHistory(in domain.InsertGameHistory) error {
	if tx.done {
		return ErrTxDone
	}
	in.UserID = tx.user.ID
	tx.history = append(tx.history, in)
	return nil
}

// записи истории, созданные при Commit
func (tx *Tx) CreatedHistory() []domain.GameHistory {
	return tx.created
}

// атомарно публикует пользователя и историю
func (tx *Tx) Commit() error {
	if tx.done {
		return ErrTxDone
	}
	defer tx.finish()

	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[tx.user.ID]
	if !ok {
		return ErrNotFound
	}
	*u = tx.user
	for _, in := range tx.history {
		tx.created = append(tx.created, s.insertGameHistoryLocked(in))
	}
	return nil
}

// отменяет изменения; после Commit ничего не делает
func (tx *Tx) Rollback() error {
	if tx.done {
		return nil
	}
	tx.finish()
	return nil
}

func (tx *Tx) finish() {
	tx.done = true
	tx.history = nil
	tx.unlock()
}
