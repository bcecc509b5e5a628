package repository

import (
	"context"

	"casino_arcade/internal/domain"
)

// Категории

func (s *MemStorage) CreateCategory(ctx context.Context, in domain.InsertCategory) (domain.Category, error) {
	category := domain.Category{
		Name:     in.Name,
		IconName: in.IconName,
	}
	if in.GamesCount != nil {
		category.GamesCount = *in.GamesCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categoryID++
	category.ID = s.categoryID
	s.categories[category.ID] = &category
	return category, nil
}

func (s *MemStorage) GetCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categories))
	for id := int64(1); id <= s.categoryID; id++ {
		if c, ok := s.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *MemStorage) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, ErrNotFound
	}
	return *c, nil
}

// Игры

func (s *MemStorage) CreateGame(ctx context.Context, in domain.InsertGame) (domain.Game, error) {
	g := domain.Game{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		Type:        in.Type,
		Difficulty:  in.Difficulty,
		Rating:      domain.DefaultGameRating,
	}
	if in.Rating != nil {
		g.Rating = *in.Rating
	}
	if in.Featured != nil {
		g.Featured = *in.Featured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gameID++
	g.ID = s.gameID
	s.games[g.ID] = &g
	return g, nil
}

func (s *MemStorage) GetGames(ctx context.Context) ([]domain.Game, error) {
	return s.filterGames(func(*domain.Game) bool { return true }), nil
}

func (s *MemStorage) GetGameByID(ctx context.Context, id int64) (domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return domain.Game{}, ErrNotFound
	}
	return *g, nil
}

// игры категории в порядке добавления
func (s *MemStorage) GetGamesByCategory(ctx context.Context, categoryID int64) ([]domain.Game, error) {
	return s.filterGames(func(g *domain.Game) bool { return g.CategoryID == categoryID }), nil
}

func (s *MemStorage) GetFeaturedGames(ctx context.Context) ([]domain.Game, error) {
	return s.filterGames(func(g *domain.Game) bool { return g.Featured }), nil
}

func (s *MemStorage) filterGames(match func(*domain.Game) bool) []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Game, 0)
	for id := int64(1); id <= s.gameID; id++ {
		if g, ok := s.games[id]; ok && match(g) {
			out = append(out, *g)
		}
	}
	return out
}
