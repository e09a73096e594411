package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/detective-quest/internal/theme"
	"github.com/jwebster45206/detective-quest/pkg/explore"
)

// Transcript collects the exploration as styled lines for the viewport.
type Transcript struct {
	lines []string
}

// Ensure Transcript can observe an exploration
var _ explore.Reporter = (*Transcript)(nil)

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Report(_ context.Context, e explore.Event) {
	switch e.Type {
	case explore.EventRoomEntered:
		t.add("")
		t.add(theme.Room.Render("» " + e.Room))
	case explore.EventClueCollected:
		t.add(theme.Clue.Render(fmt.Sprintf("Clue found: %s (points to %s)", e.Clue, e.Suspect)))
	case explore.EventClueDuplicate:
		t.add(theme.Info.Render(fmt.Sprintf("%s is already in your notebook.", e.Clue)))
	case explore.EventClueUnresolved:
		t.add(theme.Info.Render("This room has no more clues to collect."))
	case explore.EventNoClue:
		t.add(theme.Info.Render("No clue to collect in this room."))
	case explore.EventNoRoom:
		t.add(theme.Warn.Render(fmt.Sprintf("There is no room to the %s.", e.Direction)))
	case explore.EventInvalidAction:
		t.add(theme.Error.Render(fmt.Sprintf("Invalid action %q. Use e, d or s.", e.Input)))
	case explore.EventExplorationDone:
		t.add("")
		t.add("Exploration finished. Time to judge.")
	}
}

func (t *Transcript) add(line string) {
	t.lines = append(t.lines, line)
}

// String returns the transcript joined by newlines.
func (t *Transcript) String() string {
	return strings.Join(t.lines, "\n")
}
