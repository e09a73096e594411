package suspicion

import (
	"slices"

	"github.com/jwebster45206/detective-quest/pkg/textfilter"
)

// BucketCount is the fixed number of chains in an Index.
const BucketCount = 10

const hashSeed = 5381

// entry is one link of a bucket chain.
type entry struct {
	clue    string
	suspect string
	next    *entry
}

// Index maps clue identifiers to suspect identifiers using a chained hash table.
// It is populated once at startup and only read while the player explores.
type Index struct {
	buckets  [BucketCount]*entry
	size     int
	suspects []string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Hash returns the bucket for clue: djb2 (h = h*33 + byte, seeded with 5381)
// over the bytes of clue, reduced modulo BucketCount.
func Hash(clue string) int {
	var h uint64 = hashSeed
	for i := 0; i < len(clue); i++ {
		h = h<<5 + h + uint64(clue[i])
	}
	return int(h % BucketCount)
}

// Insert registers clue as pointing to suspect. The new entry is placed at the
// head of its chain; inserting an existing clue shadows the older entry.
func (idx *Index) Insert(clue, suspect string) {
	clue = textfilter.Bound(clue)
	b := Hash(clue)
	suspect = textfilter.Bound(suspect)
	idx.buckets[b] = &entry{
		clue:    clue,
		suspect: suspect,
		next:    idx.buckets[b],
	}
	idx.size++
	if !slices.Contains(idx.suspects, suspect) {
		idx.suspects = append(idx.suspects, suspect)
	}
}

// Lookup returns the suspect of the most recently inserted entry for clue.
func (idx *Index) Lookup(clue string) (string, bool) {
	clue = textfilter.Bound(clue)
	for e := idx.buckets[Hash(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Len returns the number of entries, shadowed ones included.
func (idx *Index) Len() int {
	return idx.size
}

// Suspects returns each distinct suspect once, in the order they were first registered.
func (idx *Index) Suspects() []string {
	return slices.Clone(idx.suspects)
}

// Canonical resolves free text to a registered suspect, ignoring case and
// surrounding whitespace. It returns the input unchanged when nothing matches.
func (idx *Index) Canonical(name string) string {
	for _, s := range idx.suspects {
		if textfilter.EqualFold(s, name) {
			return s
		}
	}
	return name
}

// Teardown empties every bucket. The chains are reclaimed by the garbage collector.
func (idx *Index) Teardown() {
	for i := range idx.buckets {
		idx.buckets[i] = nil
	}
	idx.size = 0
	idx.suspects = nil
}
