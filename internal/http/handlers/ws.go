package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// короткоживущий токен для подключения к /api/ws:
// браузер не передает cookie в WebSocket с другого домена
func (h *Handler) WSToken(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	token, err := h.TokenService.Issue(userID)
	if err != nil {
		respondInternal(c, err, "issue ws token failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
