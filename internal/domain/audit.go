package domain

// Логирование мастхев важных действий
type AuditLog struct {
	UserID    int64                  `json:"user_id"`
	Action    string                 `json:"action"`
	Category  string                 `json:"category"`
	Details   map[string]interface{} `json:"details"`
	IP        string                 `json:"ip,omitempty"`
	UserAgent string                 `json:"user_agent,omitempty"`
}

// Категории совершенных действий
const (
	AuditCategoryAuth        = "auth"
	AuditCategoryGame        = "game"
	AuditCategoryAchievement = "achievement"
)

const (
	// Авторизация
	AuditActionRegister = "register"
	AuditActionLogin    = "login"
	AuditActionLogout   = "logout"

	// Игры
	AuditActionGameWin  = "game_win"
	AuditActionGameLose = "game_lose"

	// Достижения
	AuditActionAchievementUnlock = "achievement_unlock"
)
