package service

import (
	"context"
	"log/slog"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/logger"
)

// пишет журнал аудита отдельным структурированным логгером
type AuditService struct {
	log *slog.Logger
}

// nil - использовать логгер по умолчанию
func NewAuditService(l *slog.Logger) *AuditService {
	if l == nil {
		l = logger.Get()
	}
	return &AuditService{log: l.With("component", "audit")}
}

// создает новую запись в журнале аудита
func (s *AuditService) Log(ctx context.Context, userID int64, action, category string, details map[string]interface{}) {
	s.write(ctx, &domain.AuditLog{
		UserID:   userID,
		Action:   action,
		Category: category,
		Details:  details,
	})
}

// создает запись аудита с информацией о запросе (ip, user-agent)
func (s *AuditService) LogWithRequest(ctx context.Context, userID int64, action, category, ip, userAgent string, details map[string]interface{}) {
	s.write(ctx, &domain.AuditLog{
		UserID:    userID,
		Action:    action,
		Category:  category,
		Details:   details,
		IP:        ip,
		UserAgent: userAgent,
	})
}

func (s *AuditService) write(ctx context.Context, entry *domain.AuditLog) {
	attrs := []any{
		"user_id", entry.UserID,
		"action", entry.Action,
		"category", entry.Category,
	}
	if entry.IP != "" {
		attrs = append(attrs, "ip", entry.IP)
	}
	if entry.UserAgent != "" {
		attrs = append(attrs, "user_agent", entry.UserAgent)
	}
	if len(entry.Details) > 0 {
		attrs = append(attrs, "details", entry.Details)
	}
	s.log.InfoContext(ctx, "audit", attrs...)
}

// логирует игровое действие
func (s *AuditService) LogGame(ctx context.Context, userID int64, gameType string, bet, winAmount int64, win bool, details map[string]interface{}) {
	action := domain.AuditActionGameLose
	if win {
		action = domain.AuditActionGameWin
	}

	if details == nil {
		details = make(map[string]interface{})
	}
	details["game_type"] = gameType
	details["bet"] = bet
	details["win_amount"] = winAmount
	details["win"] = win

	s.Log(ctx, userID, action, domain.AuditCategoryGame, details)
}

// логирует регистрацию
func (s *AuditService) LogRegister(ctx context.Context, userID int64, username, ip, userAgent string) {
	details := map[string]interface{}{"username": username}
	s.LogWithRequest(ctx, userID, domain.AuditActionRegister, domain.AuditCategoryAuth, ip, userAgent, details)
}

// логирует вход пользователя
func (s *AuditService) LogLogin(ctx context.Context, userID int64, ip, userAgent string) {
	s.LogWithRequest(ctx, userID, domain.AuditActionLogin, domain.AuditCategoryAuth, ip, userAgent, nil)
}

func (s *AuditService) LogLogout(ctx context.Context, userID int64, ip, userAgent string) {
	s.LogWithRequest(ctx, userID, domain.AuditActionLogout, domain.AuditCategoryAuth, ip, userAgent, nil)
}

// логирует открытие достижения
func (s *AuditService) LogAchievementUnlock(ctx context.Context, userID, achievementID int64, name string) {
	details := map[string]interface{}{
		"achievement_id": achievementID,
		"name":           name,
	}
	s.Log(ctx, userID, domain.AuditActionAchievementUnlock, domain.AuditCategoryAchievement, details)
}
