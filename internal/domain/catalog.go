package domain

// Тип игры, он же ключ таблицы выплат
type GameType string

const (
	GameTypeSlots     GameType = "slots"
	GameTypePoker     GameType = "poker"
	GameTypeBlackjack GameType = "blackjack"
	GameTypeRoulette  GameType = "roulette"
)

// все поддерживаемые типы игр в порядке отображения
var GameTypes = []GameType{GameTypeSlots, GameTypePoker, GameTypeBlackjack, GameTypeRoulette}

func (t GameType) Valid() bool {
	switch t {
	case GameTypeSlots, GameTypePoker, GameTypeBlackjack, GameTypeRoulette:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IconName   string `json:"iconName"`
	GamesCount int    `json:"gamesCount"`
}

type InsertCategory struct {
	Name       string
	IconName   string
	GamesCount *int
}

type Game struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	CategoryID  int64      `json:"categoryId"`
	Type        GameType   `json:"type"`
	Difficulty  Difficulty `json:"difficulty"`
	Rating      int        `json:"rating"` // шкала 0-50
	Featured    bool       `json:"featured"`
}

const DefaultGameRating = 45

type InsertGame struct {
	Name        string
	Description string
	ImageURL    string
	CategoryID  int64
	Type        GameType
	Difficulty  Difficulty
	Rating      *int
	Featured    *bool
}
