package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/console"
	"github.com/jwebster45206/detective-quest/internal/game"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/services/events"
	"github.com/jwebster45206/detective-quest/internal/tui"
	"github.com/jwebster45206/detective-quest/pkg/explore"
)

// spectators wires the optional Redis broadcaster. It returns a nil
// broadcaster and a no-op cleanup when REDIS_URL is unset or unreachable.
func spectators(ctx context.Context, cfg *config.Config, gameID uuid.UUID, log *slog.Logger) (*events.Broadcaster, func()) {
	if cfg.RedisURL == "" {
		return nil, func() {}
	}

	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := events.Connect(connCtx, cfg.RedisURL)
	if err != nil {
		logger.WithError(log, err).Warn("Event broadcasting disabled")
		return nil, func() {}
	}
	log.Info("Broadcasting game events", "channel", events.Channel(gameID))

	return events.NewBroadcaster(client, gameID, log), func() {
		if err := client.Close(); err != nil {
			log.Error("Error closing redis client", "error", err)
		}
	}
}

// newSession creates the session with every reporter attached.
func newSession(ctx context.Context, cfg *config.Config, log *slog.Logger, front explore.Reporter) (*game.Session, func(), error) {
	gameID := uuid.New()
	log = logger.WithGameID(log, gameID)

	reporters := explore.Reporters{front}
	bc, cleanup := spectators(ctx, cfg, gameID, log)
	if bc != nil {
		reporters = append(reporters, bc)
	}

	s, err := game.NewSession(gameID, reporters, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if bc != nil {
		s.WithPublisher(bc)
		if err := bc.PublishGameStarted(ctx, s.Rooms(), s.Clues()); err != nil {
			log.Warn("Failed to publish game start", "error", err)
		}
	}
	return s, cleanup, nil
}

func runConsole(ctx context.Context, cfg *config.Config, log *slog.Logger, in io.Reader, out io.Writer) error {
	con := console.New(in, out, cfg.TermWidth)

	s, cleanup, err := newSession(ctx, cfg, log, con)
	if err != nil {
		return err
	}
	defer cleanup()

	con.Welcome()
	if err := s.Explore(ctx, con); err != nil {
		s.Close()
		return err
	}

	con.PrintEvidence(s.Evidence())
	v := s.Accuse(ctx, con.ReadAccusation(s.Suspects()))
	con.PrintVerdict(v)

	s.Close()
	con.Goodbye()
	return nil
}

func runTUI(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	transcript := tui.NewTranscript()

	s, cleanup, err := newSession(ctx, cfg, log, transcript)
	if err != nil {
		return err
	}
	defer cleanup()
	defer s.Close()

	p := tea.NewProgram(tui.New(ctx, s, transcript),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
