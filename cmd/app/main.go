package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casino_arcade/internal/config"
	"casino_arcade/internal/game"
	httpServer "casino_arcade/internal/http"
	"casino_arcade/internal/http/handlers"
	"casino_arcade/internal/http/middleware"
	"casino_arcade/internal/logger"
	"casino_arcade/internal/repository"
	"casino_arcade/internal/service"
	"casino_arcade/internal/session"
	"casino_arcade/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Version устанавливается при сборке
var Version = "dev"

func main() {
	cfg := config.Load()

	// Инициализация структурированного логгера
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := logger.Get()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := repository.NewMemStorage()
	if cfg.SeedDemoData {
		if err := store.Seed(context.Background()); err != nil {
			logger.Fatal("seed failed", "error", err)
		}
		log.Info("demo data seeded", "username", repository.DemoUsername)
	}

	// Redis опционален: без него сессии и лимиты живут в памяти процесса
	var (
		rdb      *redis.Client
		sessions session.Store
	)
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Fatal("redis ping failed", "error", err, "addr", cfg.RedisAddr)
		}
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		log.Info("sessions: redis", "addr", cfg.RedisAddr)
	} else {
		mem := session.NewMemoryStore(cfg.SessionTTL)
		mem.StartCleanup(24 * time.Hour)
		defer mem.Stop()
		sessions = mem
		log.Info("sessions: memory")
	}

	var limiterClient redis.UniversalClient
	if rdb != nil {
		limiterClient = rdb
	}
	limiter := middleware.NewRateLimiter(limiterClient, cfg.PlayRateLimit, time.Minute)

	tokens := service.NewTokenService(cfg.JWTSecret, service.DefaultWSTokenTTL)
	hub := ws.NewHub()

	h := &handlers.Handler{
		Store:              store,
		AuthService:        service.NewAuthService(store),
		PlayService:        service.NewPlayService(store, game.NewResolver()),
		AchievementService: service.NewAchievementService(store),
		AuditService:       service.NewAuditService(log),
		TokenService:       tokens,
		Sessions:           sessions,
		Hub:                hub,
		SessionTTL:         cfg.SessionTTL,
		CookieSecure:       cfg.CookieSecure,
	}

	r := httpServer.NewRouter(httpServer.Deps{
		Config:  cfg,
		Handler: h,
		WS:      ws.NewWSHandler(hub, tokens, cfg.AllowedOrigin),
		Limiter: limiter,
		Version: Version,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		log.Info("server started", "port", cfg.AppPort, "env", cfg.AppEnv, "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}

	log.Info("server exited")
}
