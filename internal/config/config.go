package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	LogLevel string
	LogJSON  bool

	SessionTTL   time.Duration
	CookieSecure bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	StaticDir     string
	AllowedOrigin string

	SeedDemoData bool

	// ставок в минуту на пользователя, 0 - без ограничения
	PlayRateLimit int
}

// сессия живет неделю
const DefaultSessionTTL = 7 * 24 * time.Hour

// старый секрет из примеров .env, в production не допускается
const insecureJWTSecret = "casino-secret-key"

var ErrWeakJWTSecret = errors.New("JWT_SECRET не задан или небезопасен")

// Load читает .env (если есть) и переменные окружения
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: .env не найден, используем переменные окружения")
	}

	cfg := Config{
		AppPort:       getEnv("APP_PORT", "5000"),
		AppEnv:        getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogJSON:       getEnv("LOG_FORMAT", "text") == "json",
		SessionTTL:    getDuration("SESSION_TTL", DefaultSessionTTL),
		CookieSecure:  getBool("COOKIE_SECURE", false),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		StaticDir:     getEnv("STATIC_DIR", "./dist/public"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", ""),
		SeedDemoData:  getBool("SEED_DEMO_DATA", true),
		PlayRateLimit: getInt("PLAY_RATE_LIMIT", 0),
	}

	// вне production без секрета генерируем случайный на время жизни процесса
	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		cfg.JWTSecret = randomSecret()
	}
	return cfg
}

// Validate проверяет то, без чего нельзя стартовать
func (c Config) Validate() error {
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == insecureJWTSecret) {
		return ErrWeakJWTSecret
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("config: не удалось сгенерировать JWT секрет: %v", err)
	}
	return hex.EncodeToString(b)
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}

func getBool(key string, fallback bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val, err := time.ParseDuration(os.Getenv(key))
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}
