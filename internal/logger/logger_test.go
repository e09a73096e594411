package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/internal/config"
)

func TestSetup_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)

	log.Info("hello", "room", "Library")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["room"] != "Library" {
		t.Errorf("Expected room attribute, got %v", entry["room"])
	}
}

func TestSetup_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&config.Config{Environment: "development", LogLevel: slog.LevelWarn}, &buf)

	log.Info("filtered")
	log.Warn("kept", "room", "Study")

	out := buf.String()
	if strings.Contains(out, "filtered") {
		t.Error("Info should be filtered at warn level")
	}
	if !strings.Contains(out, "room=Study") {
		t.Errorf("Expected text handler output, got %q", out)
	}
}

func TestWithGameIDAndError(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&config.Config{LogLevel: slog.LevelDebug}, &buf)
	id := uuid.New()

	WithError(WithGameID(log, id), errors.New("boom")).Debug("tagged")

	out := buf.String()
	if !strings.Contains(out, "game_id="+id.String()) {
		t.Errorf("Missing game id in %q", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Errorf("Missing error in %q", out)
	}
}
