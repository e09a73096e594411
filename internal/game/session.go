package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/judge"
	"github.com/jwebster45206/detective-quest/pkg/ledger"
	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/suspicion"
)

// VerdictPublisher is notified of the final verdict.
type VerdictPublisher interface {
	PublishVerdict(ctx context.Context, v judge.Verdict) error
}

// Session owns the three structures of one investigation. The index and map
// are built at construction; the ledger fills up as the player explores.
// None of them points into another: records and rooms hold copied strings.
type Session struct {
	ID         uuid.UUID
	index      *suspicion.Index
	mansion    *mansion.Room
	ledger     *ledger.Ledger
	controller *explore.Controller
	publisher  VerdictPublisher
	logger     *slog.Logger
	closed     bool
}

// NewSession builds the index, then the mansion, validates that they agree
// and prepares the exploration. reporter may be nil.
func NewSession(id uuid.UUID, reporter explore.Reporter, logger *slog.Logger) (*Session, error) {
	idx := casefile.NewIndex()
	root := casefile.NewMansion()
	if err := casefile.Validate(root, idx); err != nil {
		return nil, fmt.Errorf("invalid case file: %w", err)
	}
	return newSession(id, idx, root, reporter, logger), nil
}

func newSession(id uuid.UUID, idx *suspicion.Index, root *mansion.Room, reporter explore.Reporter, logger *slog.Logger) *Session {
	l := ledger.New()
	return &Session{
		ID:         id,
		index:      idx,
		mansion:    root,
		ledger:     l,
		controller: explore.NewController(root, idx, l, reporter, logger),
		logger:     logger,
	}
}

// WithPublisher sets where the verdict is published.
// Returns the Session for method chaining
func (s *Session) WithPublisher(p VerdictPublisher) *Session {
	s.publisher = p
	return s
}

// Controller exposes the exploration for step-driven front ends.
func (s *Session) Controller() *explore.Controller {
	return s.controller
}

// Explore runs the exploration to completion against src.
func (s *Session) Explore(ctx context.Context, src explore.ActionSource) error {
	return s.controller.Run(ctx, src)
}

// Evidence returns the collected clues in alphabetical order.
func (s *Session) Evidence() []ledger.Record {
	return s.ledger.Records()
}

// Suspects returns the suspects of the case.
func (s *Session) Suspects() []string {
	return s.index.Suspects()
}

// Rooms returns the number of rooms in the mansion.
func (s *Session) Rooms() int {
	return mansion.Count(s.mansion)
}

// Clues returns the number of clues registered in the index.
func (s *Session) Clues() int {
	return s.index.Len()
}

// Accuse resolves the accusation to a known suspect when it matches one
// ignoring case, then judges it. Text matching no suspect is judged as given.
func (s *Session) Accuse(ctx context.Context, accused string) judge.Verdict {
	v := judge.Verify(s.ledger, s.index.Canonical(strings.TrimSpace(accused)))
	s.logger.Info("Verdict rendered", "accused", v.Accused, "evidence", v.Evidence, "solved", v.Solved)

	if s.publisher != nil {
		if err := s.publisher.PublishVerdict(ctx, v); err != nil {
			s.logger.Warn("Failed to publish verdict", "error", err)
		}
	}
	return v
}

// Close tears the structures down in reverse construction order: map, ledger,
// index. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	mansion.Teardown(s.mansion)
	s.mansion = nil
	s.ledger.Teardown()
	s.index.Teardown()
	s.logger.Debug("Session closed")
}
