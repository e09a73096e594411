package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/judge"
	"github.com/redis/go-redis/v9"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeGameStarted     EventType = "game.started"
	EventTypeExploration     EventType = "game.exploration"
	EventTypeVerdictRendered EventType = "game.verdict"
)

// Event represents a generic event structure
type Event struct {
	Type   EventType      `json:"type"`
	GameID string         `json:"game_id"`
	Data   map[string]any `json:"data,omitempty"`
}

// Channel returns the pub/sub channel carrying events for one game.
func Channel(gameID uuid.UUID) string {
	return fmt.Sprintf("game-events:%s", gameID.String())
}

// Broadcaster publishes game events to Redis Pub/Sub so that spectators can
// follow an investigation. Publishing failures are logged and never stop the game.
type Broadcaster struct {
	redisClient *redis.Client
	gameID      uuid.UUID
	logger      *slog.Logger
}

// Ensure Broadcaster can observe an exploration
var _ explore.Reporter = (*Broadcaster)(nil)

// NewBroadcaster creates a new event broadcaster for one game session
func NewBroadcaster(redisClient *redis.Client, gameID uuid.UUID, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		gameID:      gameID,
		logger:      logger.With("component", "events"),
	}
}

// Connect parses redisURL, checks the server is reachable and returns a client.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// PublishGameStarted publishes a game.started event
func (b *Broadcaster) PublishGameStarted(ctx context.Context, rooms, clues int) error {
	return b.publish(ctx, Event{
		Type:   EventTypeGameStarted,
		GameID: b.gameID.String(),
		Data: map[string]any{
			"rooms": rooms,
			"clues": clues,
		},
	})
}

// PublishVerdict publishes a game.verdict event
func (b *Broadcaster) PublishVerdict(ctx context.Context, v judge.Verdict) error {
	return b.publish(ctx, Event{
		Type:   EventTypeVerdictRendered,
		GameID: b.gameID.String(),
		Data: map[string]any{
			"accused":   v.Accused,
			"evidence":  v.Evidence,
			"threshold": v.Threshold,
			"solved":    v.Solved,
		},
	})
}

// Report publishes an exploration step. Errors are logged only.
func (b *Broadcaster) Report(ctx context.Context, e explore.Event) {
	data := map[string]any{"step": string(e.Type)}
	if e.Room != "" {
		data["room"] = e.Room
	}
	if e.Clue != "" {
		data["clue"] = e.Clue
	}
	if e.Suspect != "" {
		data["suspect"] = e.Suspect
	}
	if e.Direction != "" {
		data["direction"] = e.Direction
	}

	_ = b.publish(ctx, Event{
		Type:   EventTypeExploration,
		GameID: b.gameID.String(),
		Data:   data,
	})
}

// publish publishes an event to the game-specific channel
func (b *Broadcaster) publish(ctx context.Context, event Event) error {
	channel := Channel(b.gameID)

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event", event)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
	)

	return nil
}
