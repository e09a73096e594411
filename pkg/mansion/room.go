package mansion

import "github.com/jwebster45206/detective-quest/pkg/textfilter"

// Direction selects a child of a room.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Room is a node of the mansion map. Name is for display only; rooms are
// never searched by name.
type Room struct {
	Name  string
	Clue  string // Pending clue id, empty once collected or if the room never had one
	Left  *Room
	Right *Room
}

// NewRoom creates a room with no exits. clue may be empty.
func NewRoom(name, clue string) *Room {
	return &Room{
		Name: textfilter.Bound(name),
		Clue: textfilter.Bound(clue),
	}
}

// Child returns the room in direction d, or nil if there is none.
func (r *Room) Child(d Direction) *Room {
	switch d {
	case Left:
		return r.Left
	case Right:
		return r.Right
	default:
		return nil
	}
}

// HasClue reports whether the room still holds a clue to collect.
func (r *Room) HasClue() bool {
	return r.Clue != ""
}

// ClearClue marks the room's clue as collected.
func (r *Room) ClearClue() {
	r.Clue = ""
}

// IsLeaf reports whether the room has no exits.
func (r *Room) IsLeaf() bool {
	return r.Left == nil && r.Right == nil
}

// Walk visits root and its descendants in pre-order until fn returns false.
func Walk(root *Room, fn func(*Room) bool) bool {
	if root == nil {
		return true
	}
	return fn(root) && Walk(root.Left, fn) && Walk(root.Right, fn)
}

// Count returns the number of rooms in the tree rooted at root.
func Count(root *Room) int {
	n := 0
	Walk(root, func(*Room) bool {
		n++
		return true
	})
	return n
}

// Teardown detaches every room from its parent, post-order. Rooms are owned
// exclusively by the tree and reclaimed by the garbage collector once the
// root goes out of scope, so this only matters to callers still holding
// interior pointers.
func Teardown(root *Room) {
	if root == nil {
		return
	}
	Teardown(root.Left)
	Teardown(root.Right)
	root.Left, root.Right = nil, nil
}
