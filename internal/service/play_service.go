package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/game"
	"casino_arcade/internal/metrics"
	"casino_arcade/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBet        = errors.New("неверная ставка")
	ErrInvalidGameType   = errors.New("неверный тип игры")
	ErrInsufficientCoins = errors.New("недостаточно монет")
	ErrUserNotFound      = errors.New("пользователь не найден")
)

// результат одной ставки, уходит клиенту как есть
type PlayResult struct {
	Success   bool                `json:"success"`
	Won       bool                `json:"won"`
	WinAmount int64               `json:"winAmount"`
	XPEarned  int64               `json:"xpEarned"`
	User      domain.UserSnapshot `json:"user"`

	GameType  domain.GameType `json:"-"`
	Bet       int64           `json:"-"`
	HistoryID int64           `json:"-"`
}

// проводит ставку: списание, розыгрыш, выплата, опыт, история
type PlayService struct {
	store    *repository.MemStorage
	resolver *game.Resolver
}

func NewPlayService(store *repository.MemStorage, resolver *game.Resolver) *PlayService {
	return &PlayService{
		store:    store,
		resolver: resolver,
	}
}

// разбирает ставку из JSON: только положительное целое число.
// Строки, null и дробные значения не принимаются.
func ParseBet(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return 0, ErrInvalidBet
	}

	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return 0, ErrInvalidBet
	}
	if !d.IsPositive() || !d.Equal(d.Truncate(0)) || !d.BigInt().IsInt64() {
		return 0, ErrInvalidBet
	}
	return d.IntPart(), nil
}

// Play выполняет ставку одной транзакцией. Ошибка на любом шаге после
// списания откатывает всё, включая списание.
func (s *PlayService) Play(ctx context.Context, userID int64, gameType domain.GameType, bet int64) (*PlayResult, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}
	if !gameType.Valid() {
		return nil, ErrInvalidGameType
	}

	// блокируем пользователя до конца ставки
	tx, err := s.store.BeginTx(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("begin play tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if tx.User().Coins < bet {
		return nil, ErrInsufficientCoins
	}

	// списываем ставку
	tx.UpdateCoins(-bet)

	outcome, err := s.resolver.Resolve(gameType, bet)
	if err != nil {
		if errors.Is(err, game.ErrUnknownGameType) {
			return nil, ErrInvalidGameType
		}
		return nil, fmt.Errorf("resolve %s: %w", gameType, err)
	}

	if outcome.Won {
		tx.UpdateCoins(outcome.WinAmount)
	}

	xpEarned := game.XPEarned(bet, outcome.Won, outcome.WinAmount)
	user := tx.UpdateXP(xpEarned)

	winAmount := outcome.WinAmount
	if err := tx.CreateGameHistory(domain.InsertGameHistory{
		GameType:  gameType,
		Bet:       bet,
		Won:       outcome.Won,
		WinAmount: &winAmount,
	}); err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit play tx: %w", err)
	}

	metrics.ObservePlay(string(gameType), bet, outcome.Won, outcome.WinAmount)

	result := &PlayResult{
		Success:   true,
		Won:       outcome.Won,
		WinAmount: outcome.WinAmount,
		XPEarned:  xpEarned,
		User:      user.Snapshot(),
		GameType:  gameType,
		Bet:       bet,
	}
	if created := tx.CreatedHistory(); len(created) > 0 {
		result.HistoryID = created[0].ID
	}
	return result, nil
}

// таблица выплат для клиента
func (s *PlayService) Rules() []game.PayoutRule {
	return s.resolver.Rules()
}
