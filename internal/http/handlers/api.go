package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"casino_arcade/internal/domain"
	"casino_arcade/internal/http/middleware"
	"casino_arcade/internal/logger"
	"casino_arcade/internal/metrics"
	"casino_arcade/internal/repository"
	"casino_arcade/internal/service"
	"casino_arcade/internal/session"
	"casino_arcade/internal/ws"

	"github.com/gin-gonic/gin"
)

// Handler собирает зависимости всех обработчиков API
type Handler struct {
	Store              *repository.MemStorage
	AuthService        *service.AuthService
	PlayService        *service.PlayService
	AchievementService *service.AchievementService
	AuditService       *service.AuditService
	TokenService       *service.TokenService
	Sessions           session.Store
	Hub                *ws.Hub

	SessionTTL   time.Duration
	CookieSecure bool
}

func getUserID(c *gin.Context) (int64, bool) {
	return middleware.UserID(c)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// неожиданная ошибка: клиенту общий текст, подробности в лог
func respondInternal(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	logger.Error(msg, "error", err, "path", c.Request.URL.Path)
	respondError(c, http.StatusInternalServerError, "internal server error")
}

// ставка в игру: POST /api/play/:gameType {"bet": number}
func (h *Handler) Play(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Bet json.RawMessage `json:"bet"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.PlayRejections.WithLabelValues("invalid_bet").Inc()
		respondError(c, http.StatusBadRequest, "invalid bet")
		return
	}
	bet, err := service.ParseBet(req.Bet)
	if err != nil {
		metrics.PlayRejections.WithLabelValues("invalid_bet").Inc()
		respondError(c, http.StatusBadRequest, "invalid bet")
		return
	}

	ctx := c.Request.Context()
	gameType := domain.GameType(c.Param("gameType"))
	result, err := h.PlayService.Play(ctx, userID, gameType, bet)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBet):
			metrics.PlayRejections.WithLabelValues("invalid_bet").Inc()
			respondError(c, http.StatusBadRequest, "invalid bet")
		case errors.Is(err, service.ErrInvalidGameType):
			metrics.PlayRejections.WithLabelValues("invalid_game_type").Inc()
			respondError(c, http.StatusBadRequest, "invalid game type")
		case errors.Is(err, service.ErrInsufficientCoins):
			metrics.PlayRejections.WithLabelValues("insufficient_coins").Inc()
			respondError(c, http.StatusBadRequest, "insufficient coins")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusUnauthorized, "unauthorized")
		default:
			respondInternal(c, err, "play failed")
		}
		return
	}

	// записать лог
	h.AuditService.LogGame(ctx, userID, string(result.GameType), result.Bet, result.WinAmount, result.Won, map[string]interface{}{
		"history_id": result.HistoryID,
		"xp_earned":  result.XPEarned,
	})

	if h.Hub != nil {
		h.Hub.NotifyUser(userID, ws.EventPlayResult, result)
	}

	c.JSON(http.StatusOK, result)
}

// таблица выплат
func (h *Handler) GetRules(c *gin.Context) {
	rules := h.PlayService.Rules()
	out := make([]gin.H, 0, len(rules))
	for _, r := range rules {
		out = append(out, gin.H{
			"type":           r.Type,
			"probability":    r.Probability,
			"multiplier":     r.Multiplier.String(),
			"expectedReturn": r.ExpectedReturn(),
		})
	}
	c.JSON(http.StatusOK, out)
}
