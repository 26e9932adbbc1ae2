package config

import (
	"os"
	"time"
)

type Config struct {
	DatabasePath     string
	JWTSecret        string
	JWTExpiration    time.Duration
	ServerPort       string
	GeminiAPIKey     string
	ChatTimeout      time.Duration
	SeedDemoAccounts bool
}

func Load() *Config {
	return &Config{
		DatabasePath:     getEnv("DATABASE_PATH", "ses.db"),
		JWTSecret:        getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration:    24 * time.Hour,
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		ChatTimeout:      30 * time.Second,
		SeedDemoAccounts: getEnv("SEED_DEMO_ACCOUNTS", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
