package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"casino_arcade/internal/logger"
	"casino_arcade/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "casino:rl:"

// INCR и срок жизни окна атомарно: у счетчика всегда есть TTL
var windowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimiter - фиксированное окно на ключ. С Redis счетчик общий для
// всех инстансов, без него считаем в памяти процесса.
type RateLimiter struct {
	rdb    redis.UniversalClient
	limit  int
	window time.Duration
	now    func() time.Time

	mu    sync.Mutex
	local map[string]*localWindow
}

type localWindow struct {
	start time.Time
	count int
}

// limit <= 0 отключает ограничение
func NewRateLimiter(rdb redis.UniversalClient, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		now:    time.Now,
		local:  make(map[string]*localWindow),
	}
}

func (l *RateLimiter) Allow(ctx context.Context, key string) bool {
	if l.limit <= 0 {
		return true
	}
	if l.rdb != nil {
		allowed, err := l.allowRedis(ctx, key)
		if err == nil {
			return allowed
		}
		// redis недоступен - считаем локально
		logger.Warn("ratelimit: redis недоступен", "error", err)
	}
	return l.allowLocal(key)
}

func (l *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	k := rateLimitKeyPrefix + key
	n, err := windowScript.Run(ctx, l.rdb, []string{k}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return n <= int64(l.limit), nil
}

func (l *RateLimiter) allowLocal(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.local[key]
	if !ok || now.Sub(w.start) >= l.window {
		l.local[key] = &localWindow{start: now, count: 1}
		l.gcLocked(now)
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// чистим истекшие окна, чтобы карта не росла бесконечно
func (l *RateLimiter) gcLocked(now time.Time) {
	if len(l.local) < 1024 {
		return
	}
	for k, w := range l.local {
		if now.Sub(w.start) >= l.window {
			delete(l.local, k)
		}
	}
}

// ключ - пользователь сессии, для анонимов IP
func (l *RateLimiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":ip:" + c.ClientIP()
		if userID, ok := UserID(c); ok {
			key = scope + ":user:" + strconv.FormatInt(userID, 10)
		}

		if !l.Allow(c.Request.Context(), key) {
			metrics.PlayRejections.WithLabelValues("rate_limited").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}
		c.Next()
	}
}
