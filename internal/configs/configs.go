package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	Env                    string
	DatabaseDSN            string
	JWTSecret              string
	TokenTTLHours          int
	RateLimit              int
	RedisAddr              string
	RedisRateLimitPrefix   string
	StaticDir              string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "5000")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		Env:                    getEnv("APP_ENV", "development"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTLHours:          getEnvAsInt("TOKEN_TTL_HOURS", 720),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RedisRateLimitPrefix:   getEnv("REDIS_RATE_LIMIT_PREFIX", "rate_limit"),
		StaticDir:              getEnv("STATIC_DIR", "client/dist"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:5000)")
	}
	if cfg.Env != "development" && cfg.Env != "production" {
		log.Fatal("APP_ENV must be development or production")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTLHours <= 0 {
		log.Fatal("TOKEN_TTL_HOURS must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
