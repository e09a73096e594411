// Package casefile holds the compiled-in mystery: which clue points to which
// suspect and where each clue lies in the mansion.
package casefile

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/suspicion"
)

// Suspects, in the order they are presented to the player.
const (
	LadyAgatha  = "Lady Agatha"
	ButlerJames = "James the Butler"
	CookMarie   = "Marie the Cook"
)

// Clue ids.
const (
	RedSilkThread     = "Red silk thread"
	GreaseResidue     = "Grease residue"
	BlackLeatherGlove = "Black leather glove"
	MedicineWrapper   = "Medicine wrapper"
	BrokenPipe        = "Broken pipe"
	CoffeeStain       = "Coffee grounds stain"
	CoordinatesNote   = "Note with coordinates"
)

// Room names.
const (
	CentralHall   = "Central Hall"
	Library       = "Library"
	DiningRoom    = "Dining Room"
	MasterBedroom = "Master Bedroom"
	Kitchen       = "Kitchen"
	Study         = "Study"
	LivingRoom    = "Living Room"
)

// Association binds a clue to the suspect it incriminates.
type Association struct {
	Clue    string `json:"clue"`
	Suspect string `json:"suspect"`
}

// Associations lists every clue of the case in registration order.
var Associations = []Association{
	{Clue: RedSilkThread, Suspect: LadyAgatha},
	{Clue: GreaseResidue, Suspect: ButlerJames},
	{Clue: BlackLeatherGlove, Suspect: LadyAgatha},
	{Clue: MedicineWrapper, Suspect: CookMarie},
	{Clue: BrokenPipe, Suspect: ButlerJames},
	{Clue: CoffeeStain, Suspect: CookMarie},
	{Clue: CoordinatesNote, Suspect: ButlerJames},
}

var (
	ErrUnknownClue   = errors.New("room clue is not registered in the index")
	ErrDuplicateClue = errors.New("clue placed in more than one room")
	ErrDuplicateRoom = errors.New("room name used more than once")
	ErrMissingRoom   = errors.New("mansion has no rooms")
)

// NewIndex builds the suspicion index for the case.
func NewIndex() *suspicion.Index {
	idx := suspicion.NewIndex()
	for _, a := range Associations {
		idx.Insert(a.Clue, a.Suspect)
	}
	return idx
}

// NewMansion builds the fixed seven-room map:
//
//	             Central Hall
//	            /            \
//	     Library              Dining Room
//	     /     \              /         \
//	Master    Kitchen      Study     Living Room
//	Bedroom
func NewMansion() *mansion.Room {
	root := mansion.NewRoom(CentralHall, RedSilkThread)
	root.Left = mansion.NewRoom(Library, GreaseResidue)
	root.Right = mansion.NewRoom(DiningRoom, BlackLeatherGlove)
	root.Left.Left = mansion.NewRoom(MasterBedroom, MedicineWrapper)
	root.Left.Right = mansion.NewRoom(Kitchen, CoffeeStain)
	root.Right.Left = mansion.NewRoom(Study, BrokenPipe)
	root.Right.Right = mansion.NewRoom(LivingRoom, CoordinatesNote)
	return root
}

// Validate checks that every clue placed in the mansion resolves in idx,
// that no clue is placed twice and that room names are unique.
func Validate(root *mansion.Room, idx *suspicion.Index) error {
	if root == nil {
		return ErrMissingRoom
	}

	var (
		err   error
		rooms = make(map[string]bool)
		clues = make(map[string]string)
	)
	mansion.Walk(root, func(r *mansion.Room) bool {
		if rooms[r.Name] {
			err = fmt.Errorf("%w: %q", ErrDuplicateRoom, r.Name)
			return false
		}
		rooms[r.Name] = true

		if !r.HasClue() {
			return true
		}
		if prev, ok := clues[r.Clue]; ok {
			err = fmt.Errorf("%w: %q in %q and %q", ErrDuplicateClue, r.Clue, prev, r.Name)
			return false
		}
		clues[r.Clue] = r.Name

		if _, ok := idx.Lookup(r.Clue); !ok {
			err = fmt.Errorf("%w: %q in %q", ErrUnknownClue, r.Clue, r.Name)
			return false
		}
		return true
	})
	return err
}
