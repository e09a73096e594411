package explore

import (
	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/textfilter"
)

type Action string

const (
	ActLeft  Action = "left"
	ActRight Action = "right"
	ActStop  Action = "stop"
	ActNone  Action = "" // Unrecognized input
)

// ParseAction maps a line of player input to an Action using its first
// non-blank character, case-insensitively: e (esquerda) goes left, d (direita)
// goes right and s stops. The rest of the line is ignored.
func ParseAction(input string) Action {
	switch textfilter.FirstRune(input) {
	case 'e':
		return ActLeft
	case 'd':
		return ActRight
	case 's':
		return ActStop
	default:
		return ActNone
	}
}

// Direction returns the map direction for a movement action.
func (a Action) Direction() (mansion.Direction, bool) {
	switch a {
	case ActLeft:
		return mansion.Left, true
	case ActRight:
		return mansion.Right, true
	default:
		return 0, false
	}
}
