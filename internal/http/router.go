package http

import (
	stdhttp "net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"casino_arcade/internal/config"
	"casino_arcade/internal/http/handlers"
	"casino_arcade/internal/http/middleware"
	"casino_arcade/internal/metrics"
	"casino_arcade/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps - все, что нужно для сборки роутера
type Deps struct {
	Config  config.Config
	Handler *handlers.Handler
	WS      *ws.WSHandler
	Limiter *middleware.RateLimiter
	Version string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(),
		metrics.Middleware(),
		middleware.CORS(d.Config.AllowedOrigin),
		middleware.RequestLogger(),
	)
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	h := d.Handler
	startedAt := time.Now()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(stdhttp.StatusOK, gin.H{
			"status":  "ok",
			"version": d.Version,
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
		})
	})

	api := r.Group("/api", middleware.Session(h.Sessions))
	auth := middleware.RequireAuth()

	// авторизация
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/user", auth, h.CurrentUser)

	// каталог
	api.GET("/categories", h.GetCategories)
	api.GET("/games", h.GetGames)
	api.GET("/games/featured", h.GetFeaturedGames)
	api.GET("/games/category/:id", h.GetGamesByCategory)
	api.GET("/games/rules", h.GetRules)

	// игрок
	api.GET("/achievements", auth, h.GetAchievements)
	api.POST("/achievements/:id/unlock", auth, h.UnlockAchievement)
	api.GET("/history", auth, h.GetHistory)
	api.GET("/leaderboard", h.GetLeaderboard)
	api.GET("/leaderboard/me", auth, h.GetMyRank)

	// игры
	play := []gin.HandlerFunc{auth}
	if d.Limiter != nil {
		play = append(play, d.Limiter.Middleware("play"))
	}
	play = append(play, h.Play)
	api.POST("/play/:gameType", play...)

	// realtime
	api.GET("/ws/token", auth, h.WSToken)
	if d.WS != nil {
		api.GET("/ws", d.WS.HandleWS())
	}

	r.NoRoute(spaFallback(d.Config))
}

// Вне development отдаем собранный фронт, неизвестные пути ведут на index.html.
// Неизвестные /api пути всегда 404 в JSON.
func spaFallback(cfg config.Config) gin.HandlerFunc {
	serveStatic := !cfg.IsDevelopment() && cfg.StaticDir != ""
	index := filepath.Join(cfg.StaticDir, "index.html")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || !serveStatic {
			c.JSON(stdhttp.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		if c.Request.Method != stdhttp.MethodGet && c.Request.Method != stdhttp.MethodHead {
			c.JSON(stdhttp.StatusNotFound, gin.H{"message": "not found"})
			return
		}

		file := filepath.Join(cfg.StaticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	}
}
