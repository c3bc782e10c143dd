package intersect

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/btree"
)

// Report is an ordered set of intersecting pairs that is safe for concurrent use.
type Report struct {
	mu    sync.Mutex
	pairs *btree.BTreeG[Pair]
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{
		pairs: btree.NewG[Pair](16, Pair.Less),
	}
}

// Add adds the pair of segments i and j, and returns false if it was already present.
func (r *Report) Add(i, j int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, replaced := r.pairs.ReplaceOrInsert(newPair(i, j))
	return !replaced
}

// Has returns true if the pair of segments i and j is present.
func (r *Report) Has(i, j int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pairs.Has(newPair(i, j))
}

// Len returns the number of pairs.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pairs.Len()
}

// Pairs returns all pairs sorted by their first and then their second index.
func (r *Report) Pairs() []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()
	pairs := make([]Pair, 0, r.pairs.Len())
	r.pairs.Ascend(func(p Pair) bool {
		pairs = append(pairs, p)
		return true
	})
	return pairs
}

// Print writes one pair per line.
func (r *Report) Print(w io.Writer) {
	for _, p := range r.Pairs() {
		fmt.Fprintln(w, p)
	}
}
