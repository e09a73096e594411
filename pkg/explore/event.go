package explore

import "context"

// EventType identifies what happened during exploration.
type EventType string

const (
	EventRoomEntered     EventType = "room.entered"
	EventClueCollected   EventType = "clue.collected"
	EventClueDuplicate   EventType = "clue.duplicate"  // Resolved, but the ledger already held it
	EventClueUnresolved  EventType = "clue.unresolved" // Room clue missing from the index
	EventNoClue          EventType = "clue.none"
	EventNoRoom          EventType = "move.blocked"
	EventInvalidAction   EventType = "action.invalid"
	EventExplorationDone EventType = "exploration.finished"
)

// Event describes one step of an exploration for presentation collaborators.
type Event struct {
	Type      EventType `json:"type"`
	Room      string    `json:"room,omitempty"`
	Clue      string    `json:"clue,omitempty"`
	Suspect   string    `json:"suspect,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Input     string    `json:"input,omitempty"`
}

// Reporter receives exploration events. Implementations must not block for long;
// the controller calls them synchronously.
type Reporter interface {
	Report(ctx context.Context, e Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, e Event)

func (f ReporterFunc) Report(ctx context.Context, e Event) {
	f(ctx, e)
}

// Reporters fans each event out to every reporter in order.
type Reporters []Reporter

func (rs Reporters) Report(ctx context.Context, e Event) {
	for _, r := range rs {
		if r != nil {
			r.Report(ctx, e)
		}
	}
}

type discard struct{}

func (discard) Report(context.Context, Event) {}
