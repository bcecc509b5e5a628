package repository

import (
	"context"
	"fmt"

	"casino_arcade/internal/domain"
)

// Демо-пользователь, создается при Seed
const (
	DemoUsername = "player1"
	DemoPassword = "password123"
)

func ptr[T any](v T) *T { return &v }

// набор достижений, который получает каждый новый игрок
func DefaultAchievements(userID int64) []domain.InsertAchievement {
	return []domain.InsertAchievement{
		{UserID: userID, Name: "Новичок", Description: "Сыграйте свою первую игру"},
		{UserID: userID, Name: "Счастливчик", Description: "Выиграйте 5 раз подряд"},
		{UserID: userID, Name: "Большой куш", Description: "Выиграйте более 1000 монет за одну игру"},
	}
}

// заполняет пустое хранилище справочниками и демо-пользователем
func (s *MemStorage) Seed(ctx context.Context) error {
	user, err := s.CreateUser(ctx, domain.InsertUser{
		Username: DemoUsername,
		Password: DemoPassword,
		Coins:    ptr(int64(5000)),
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	categories := []domain.InsertCategory{
		{Name: "Slots", IconName: "fa-slot-machine", GamesCount: ptr(12)},
		{Name: "Card Games", IconName: "fa-cards", GamesCount: ptr(8)},
		{Name: "Table Games", IconName: "fa-table", GamesCount: ptr(6)},
		{Name: "Specialty", IconName: "fa-dice", GamesCount: ptr(4)},
	}
	ids := make([]int64, 0, len(categories))
	for _, in := range categories {
		c, err := s.CreateCategory(ctx, in)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", in.Name, err)
		}
		ids = append(ids, c.ID)
	}
	slotsID, cardsID, tableID := ids[0], ids[1], ids[2]

	games := []domain.InsertGame{
		{
			Name:        "Lucky Spin",
			Description: "Классический игровой автомат с тремя барабанами",
			ImageURL:    "/images/slots.jpg",
			CategoryID:  slotsID,
			Type:        domain.GameTypeSlots,
			Difficulty:  domain.DifficultyBeginner,
			Rating:      ptr(42),
			Featured:    ptr(true),
		},
		{
			Name:        "Card Master",
			Description: "Испытай удачу в классическом покере",
			ImageURL:    "/images/poker.jpg",
			CategoryID:  cardsID,
			Type:        domain.GameTypePoker,
			Difficulty:  domain.DifficultyIntermediate,
			Rating:      ptr(47),
			Featured:    ptr(true),
		},
		{
			Name:        "Black Jack Pro",
			Description: "Попробуй набрать 21 очко и обыграть крупье",
			ImageURL:    "/images/blackjack.jpg",
			CategoryID:  cardsID,
			Type:        domain.GameTypeBlackjack,
			Difficulty:  domain.DifficultyBeginner,
			Rating:      ptr(45),
			Featured:    ptr(true),
		},
		{
			Name:        "Roulette Royale",
			Description: "Классическая рулетка с европейскими правилами",
			ImageURL:    "/images/roulette.jpg",
			CategoryID:  tableID,
			Type:        domain.GameTypeRoulette,
			Difficulty:  domain.DifficultyBeginner,
			Rating:      ptr(48),
			Featured:    ptr(true),
		},
	}
	for _, in := range games {
		if _, err := s.CreateGame(ctx, in); err != nil {
			return fmt.Errorf("seed game %q: %w", in.Name, err)
		}
	}

	// первое достижение у демо-игрока уже открыто
	now := s.now()
	for i, in := range DefaultAchievements(user.ID) {
		if i == 0 {
			in.Unlocked = ptr(true)
			in.UnlockedAt = &now
		}
		if _, err := s.CreateAchievement(ctx, in); err != nil {
			return fmt.Errorf("seed achievement %q: %w", in.Name, err)
		}
	}

	return nil
}
