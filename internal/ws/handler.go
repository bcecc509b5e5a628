package ws

import (
	"net/http"

	"casino_arcade/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// проверяет токен подключения и возвращает userID
type TokenParser interface {
	Parse(token string) (int64, error)
}

// содержит зависимости для обработки WebSocket
type WSHandler struct {
	Hub      *Hub
	Tokens   TokenParser
	upgrader websocket.Upgrader
}

// allowedOrigin пустой - принимаем любой Origin
func NewWSHandler(hub *Hub, tokens TokenParser, allowedOrigin string) *WSHandler {
	return &WSHandler{
		Hub:    hub,
		Tokens: tokens,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

func (h *WSHandler) HandleWS() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		userID, err := h.Tokens.Parse(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade уже записал ответ клиенту
			logger.Warn("ws: ошибка обновления соединения", "error", err, "user_id", userID)
			return
		}

		client := NewClient(userID, conn, h.Hub)
		go client.Run()
	}
}
