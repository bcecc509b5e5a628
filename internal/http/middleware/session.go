package middleware

import (
	"errors"
	"net/http"

	"casino_arcade/internal/logger"
	"casino_arcade/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "casino.sid"

	ctxUserID    = "user_id"
	ctxSessionID = "session_id"
)

// Session подгружает сессию по cookie. Запрос без сессии проходит дальше
// анонимным, отказ дает RequireAuth.
func Session(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				logger.Error("session: не удалось загрузить сессию", "error", err)
			}
			c.Next()
			return
		}

		c.Set(ctxUserID, sess.UserID)
		c.Set(ctxSessionID, sess.ID)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.Next()
	}
}

// id пользователя текущей сессии
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

func SessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxSessionID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
