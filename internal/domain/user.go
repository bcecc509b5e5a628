package domain

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // хранится как есть, сравнивается в AuthService
	Coins    int64  `json:"coins"`
	Level    int64  `json:"level"`
	XP       int64  `json:"xp"`
}

// Значения по умолчанию для нового пользователя
const (
	DefaultCoins int64 = 1000
	DefaultLevel int64 = 1
	DefaultXP    int64 = 0
)

// то, что видит клиент (без пароля)
type UserSnapshot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Coins    int64  `json:"coins"`
	Level    int64  `json:"level"`
	XP       int64  `json:"xp"`
}

func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Coins:    u.Coins,
		Level:    u.Level,
		XP:       u.XP,
	}
}

// Данные для создания пользователя, nil - значение по умолчанию
type InsertUser struct {
	Username string
	Password string
	Coins    *int64
	Level    *int64
	XP       *int64
}
