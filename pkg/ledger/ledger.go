package ledger

import (
	"iter"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/textfilter"
)

// Record is a collected clue and the suspect it points to.
type Record struct {
	Clue    string `json:"clue"`
	Suspect string `json:"suspect"`
}

// NewRecord builds a Record with bounded fields.
func NewRecord(clue, suspect string) Record {
	return Record{
		Clue:    textfilter.Bound(clue),
		Suspect: textfilter.Bound(suspect),
	}
}

type node struct {
	rec   Record
	left  *node
	right *node
}

// Ledger is a binary search tree of collected clues keyed by clue identifier.
// A clue can be held only once; later insertions of the same key are discarded.
type Ledger struct {
	root *node
	size int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Insert adds rec to the ledger. It reports false, leaving the tree unchanged,
// when a record with the same clue is already present.
func (l *Ledger) Insert(rec Record) bool {
	var inserted bool
	l.root, inserted = insert(l.root, rec)
	if inserted {
		l.size++
	}
	return inserted
}

func insert(n *node, rec Record) (*node, bool) {
	if n == nil {
		return &node{rec: rec}, true
	}
	var inserted bool
	switch c := strings.Compare(rec.Clue, n.rec.Clue); {
	case c < 0:
		n.left, inserted = insert(n.left, rec)
	case c > 0:
		n.right, inserted = insert(n.right, rec)
	}
	return n, inserted
}

// All yields the records in ascending clue order. The sequence is lazy and
// may be ranged over repeatedly.
func (l *Ledger) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		inOrder(l.root, yield)
	}
}

func inOrder(n *node, yield func(Record) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.rec) && inOrder(n.right, yield)
}

// Records returns the in-order listing as a slice.
func (l *Ledger) Records() []Record {
	out := make([]Record, 0, l.size)
	for rec := range l.All() {
		out = append(out, rec)
	}
	return out
}

// CountMatching returns how many records point to suspect.
func (l *Ledger) CountMatching(suspect string) int {
	return countMatching(l.root, suspect)
}

func countMatching(n *node, suspect string) int {
	if n == nil {
		return 0
	}
	count := countMatching(n.left, suspect) + countMatching(n.right, suspect)
	if n.rec.Suspect == suspect {
		count++
	}
	return count
}

// Contains reports whether clue has been collected.
func (l *Ledger) Contains(clue string) bool {
	n := l.root
	for n != nil {
		switch c := strings.Compare(clue, n.rec.Clue); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of records held.
func (l *Ledger) Len() int {
	return l.size
}

// Teardown drops every record.
func (l *Ledger) Teardown() {
	l.root = nil
	l.size = 0
}
