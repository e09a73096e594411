package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	RedisURL    string // Optional; events are only broadcast when set
	TermWidth   int
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		RedisURL:    getEnv("REDIS_URL", ""),
		TermWidth:   parseWidth(getEnv("TERM_WIDTH", "80")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// parseWidth falls back to 80 columns for anything unusable.
func parseWidth(s string) int {
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || w < 20 {
		return 80
	}
	return w
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
