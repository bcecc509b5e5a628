package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"casino_arcade/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetAchievements(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	achievements, err := h.AchievementService.List(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err, "load achievements failed")
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func (h *Handler) UnlockAchievement(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	achievementID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid achievement id")
		return
	}

	ctx := c.Request.Context()
	a, changed, err := h.AchievementService.Unlock(ctx, userID, achievementID)
	if err != nil {
		if errors.Is(err, service.ErrAchievementNotFound) {
			respondError(c, http.StatusBadRequest, "invalid achievement id")
			return
		}
		respondInternal(c, err, "unlock achievement failed")
		return
	}
	if changed {
		h.AuditService.LogAchievementUnlock(ctx, userID, a.ID, a.Name)
	}
	c.JSON(http.StatusOK, a)
}

// история игр текущего пользователя
func (h *Handler) GetHistory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	history, err := h.Store.GetGameHistoryByUserID(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err, "load history failed")
		return
	}
	c.JSON(http.StatusOK, history)
}
