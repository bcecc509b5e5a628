package handlers

import (
	"errors"
	"net/http"

	"casino_arcade/internal/repository"

	"github.com/gin-gonic/gin"
)

const leaderboardSize = 100

// список 100 лучших игроков по монетам
func (h *Handler) GetLeaderboard(c *gin.Context) {
	top, err := h.Store.GetTopUsers(c.Request.Context(), leaderboardSize)
	if err != nil {
		respondInternal(c, err, "load leaderboard failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": top,
		"period":      "all_time",
	})
}

// рейтинг пользователя в топе
func (h *Handler) GetMyRank(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	entry, err := h.Store.GetUserRank(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		respondInternal(c, err, "load rank failed")
		return
	}
	c.JSON(http.StatusOK, entry)
}
