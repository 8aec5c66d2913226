// Package engine implements the transposition table, evaluator, and
// iterative-deepening alpha-beta search built on top of goosemg.
package engine

import gm "chessgoose/goosemg"

// Bound identifies how a stored score relates to the search window that
// produced it.
type Bound int8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// ttSize is the table's slot count, sized close to 2^21 per spec.
const ttSize = 1 << 21

// TTEntry is one transposition-table slot: the full hash (to detect
// collisions against the direct-mapped index), the search that produced it,
// and the move it recommends.
type TTEntry struct {
	Hash  uint64
	Depth int
	Value int
	Best  gm.Move
	Bound Bound
	valid bool
}

// TranspositionTable is a fixed-size, direct-mapped, always-replace cache
// keyed by Zobrist hash. One entry per slot; a store always overwrites
// whatever was there, per spec.md's simplification of the teacher's
// 4-way-clustered table (engine/transposition.go).
type TranspositionTable struct {
	entries []TTEntry
}

// NewTranspositionTable allocates a fresh, empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make([]TTEntry, ttSize)}
}

func (t *TranspositionTable) index(hash uint64) uint64 { return hash % ttSize }

// Probe reports whether the table holds a usable entry for hash at least as
// deep as depth, considering alpha/beta for bound qualification. On a hit,
// the stored entry itself is returned for both cutoff and move-ordering use.
func (t *TranspositionTable) Probe(hash uint64, depth, alpha, beta int) (entry TTEntry, hit bool) {
	e := t.entries[t.index(hash)]
	if !e.valid || e.Hash != hash {
		return TTEntry{}, false
	}
	if e.Depth < depth {
		return e, false
	}
	switch e.Bound {
	case BoundExact:
		return e, true
	case BoundLower:
		return e, e.Value >= beta
	case BoundUpper:
		return e, e.Value <= alpha
	}
	return e, false
}

// Store records a search result, deriving its bound kind from where value
// fell relative to the search window that produced it.
func (t *TranspositionTable) Store(hash uint64, depth, value, alphaIn, betaIn int, best gm.Move) {
	bound := BoundExact
	switch {
	case value <= alphaIn:
		bound = BoundUpper
	case value >= betaIn:
		bound = BoundLower
	}
	t.entries[t.index(hash)] = TTEntry{
		Hash: hash, Depth: depth, Value: value, Best: best, Bound: bound, valid: true,
	}
}

// Clear resets every slot, used by ucinewgame.
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
}
