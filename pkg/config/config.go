package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	MediaRoot       string
	SessionLifetime time.Duration
	CacheTTL        time.Duration
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MediaRoot:       getEnv("MEDIA_ROOT", "./media"),
		SessionLifetime: time.Duration(getEnvInt("SESSION_LIFETIME_HOURS", 24)) * time.Hour,
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_SECONDS", 20)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
