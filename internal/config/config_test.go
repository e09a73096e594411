package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("TERM_WIDTH", "")

	cfg := Load()

	if cfg.Environment != "development" {
		t.Errorf("Expected development environment, got %q", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("Expected warn level, got %v", cfg.LogLevel)
	}
	if cfg.RedisURL != "" {
		t.Errorf("Expected broadcasting disabled by default, got %q", cfg.RedisURL)
	}
	if cfg.TermWidth != 80 {
		t.Errorf("Expected width 80, got %d", cfg.TermWidth)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TERM_WIDTH", "120")

	cfg := Load()

	if cfg.Environment != "production" {
		t.Errorf("Expected production, got %q", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("Unexpected redis url %q", cfg.RedisURL)
	}
	if cfg.TermWidth != 120 {
		t.Errorf("Expected width 120, got %d", cfg.TermWidth)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.expected {
			t.Errorf("parseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"100", 100},
		{" 64 ", 64},
		{"abc", 80},
		{"5", 80},
	}
	for _, tt := range tests {
		if got := parseWidth(tt.input); got != tt.expected {
			t.Errorf("parseWidth(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}
