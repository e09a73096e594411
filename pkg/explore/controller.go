package explore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jwebster45206/detective-quest/pkg/ledger"
	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/suspicion"
)

// State of an exploration.
type State int

const (
	StateAtRoom    State = iota // Entering the current room
	StateExploring              // Waiting for a decision
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateAtRoom:
		return "at_room"
	case StateExploring:
		return "exploring"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ActionSource supplies the player's raw decisions, one line per call.
// Returning io.EOF means the input is exhausted and ends the exploration.
type ActionSource interface {
	NextAction(ctx context.Context) (string, error)
}

// Controller walks the mansion one room at a time, resolving each room's clue
// against the index and recording it in the ledger. There is no backtracking:
// once a branch is taken the sibling branch is out of reach.
//
// A Controller can be driven step by step with Start and Apply, or run to
// completion against an ActionSource with Run.
type Controller struct {
	current  *mansion.Room
	index    *suspicion.Index
	ledger   *ledger.Ledger
	reporter Reporter
	logger   *slog.Logger
	state    State
	path     []string
}

// NewController prepares an exploration starting at root. reporter may be nil.
// A nil logger falls back to slog.Default.
func NewController(root *mansion.Room, idx *suspicion.Index, l *ledger.Ledger, reporter Reporter, logger *slog.Logger) *Controller {
	if reporter == nil {
		reporter = discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		current:  root,
		index:    idx,
		ledger:   l,
		reporter: reporter,
		logger:   logger.With("component", "explore"),
		state:    StateAtRoom,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the room the player is in.
func (c *Controller) Current() *mansion.Room {
	return c.current
}

// Path returns the names of the rooms entered so far, in order.
func (c *Controller) Path() []string {
	return append([]string(nil), c.path...)
}

// Start enters the starting room. It is a no-op once the exploration has begun.
func (c *Controller) Start(ctx context.Context) State {
	if c.state != StateAtRoom {
		return c.state
	}
	if c.current == nil {
		c.finish(ctx)
		return c.state
	}
	c.enter(ctx, c.current)
	return c.state
}

// Apply handles one line of player input and returns the resulting state.
// Invalid input and blocked moves leave the state unchanged.
func (c *Controller) Apply(ctx context.Context, input string) State {
	a := ParseAction(input)
	if c.state == StateAtRoom {
		c.Start(ctx)
	}
	if c.state == StateFinished {
		return c.state
	}

	if a == ActStop {
		c.finish(ctx)
		return c.state
	}

	dir, ok := a.Direction()
	if !ok {
		c.logger.Warn("Invalid action", "input", input, "room", c.current.Name)
		c.reporter.Report(ctx, Event{Type: EventInvalidAction, Room: c.current.Name, Input: input})
		return c.state
	}

	next := c.current.Child(dir)
	if next == nil {
		c.logger.Warn("No room in that direction", "direction", dir.String(), "room", c.current.Name)
		c.reporter.Report(ctx, Event{Type: EventNoRoom, Room: c.current.Name, Direction: dir.String()})
		return c.state
	}

	c.current = next
	c.state = StateAtRoom
	c.enter(ctx, next)
	return c.state
}

// Run drives the exploration until the player stops or the source is exhausted.
func (c *Controller) Run(ctx context.Context, src ActionSource) error {
	c.Start(ctx)
	for c.state != StateFinished {
		if err := ctx.Err(); err != nil {
			c.finish(ctx)
			return fmt.Errorf("exploration interrupted: %w", err)
		}

		input, err := src.NextAction(ctx)
		if errors.Is(err, io.EOF) {
			c.logger.Debug("Input exhausted, ending exploration")
			c.finish(ctx)
			return nil
		}
		if err != nil {
			c.finish(ctx)
			return fmt.Errorf("failed to read action: %w", err)
		}
		c.Apply(ctx, input)
	}
	return nil
}

// enter collects the room's pending clue, if any, and waits for a decision.
func (c *Controller) enter(ctx context.Context, r *mansion.Room) {
	c.path = append(c.path, r.Name)
	c.logger.Debug("Entered room", "room", r.Name, "depth", len(c.path)-1)
	c.reporter.Report(ctx, Event{Type: EventRoomEntered, Room: r.Name})
	c.collect(ctx, r)
	c.state = StateExploring
}

func (c *Controller) collect(ctx context.Context, r *mansion.Room) {
	if !r.HasClue() {
		c.reporter.Report(ctx, Event{Type: EventNoClue, Room: r.Name})
		return
	}

	suspect, ok := c.index.Lookup(r.Clue)
	if !ok {
		c.logger.Info("Room clue not found in index", "room", r.Name, "clue", r.Clue)
		c.reporter.Report(ctx, Event{Type: EventClueUnresolved, Room: r.Name, Clue: r.Clue})
		return
	}

	rec := ledger.NewRecord(r.Clue, suspect)
	if c.ledger.Insert(rec) {
		c.logger.Debug("Clue collected", "room", r.Name, "clue", rec.Clue, "suspect", rec.Suspect)
		c.reporter.Report(ctx, Event{Type: EventClueCollected, Room: r.Name, Clue: rec.Clue, Suspect: rec.Suspect})
	} else {
		c.logger.Debug("Clue already in ledger", "room", r.Name, "clue", rec.Clue)
		c.reporter.Report(ctx, Event{Type: EventClueDuplicate, Room: r.Name, Clue: rec.Clue, Suspect: rec.Suspect})
	}
	r.ClearClue()
}

func (c *Controller) finish(ctx context.Context) {
	if c.state == StateFinished {
		return
	}
	c.state = StateFinished
	var room string
	if c.current != nil {
		room = c.current.Name
	}
	c.logger.Debug("Exploration finished", "rooms_visited", len(c.path), "clues", c.ledger.Len())
	c.reporter.Report(ctx, Event{Type: EventExplorationDone, Room: room})
}
