package engine

import gm "chessgoose/goosemg"

// Infinity is the extreme sentinel used for forced-mate scores. Chosen well
// clear of any realistic evaluation sum so it never collides with a normal
// score.
const Infinity = 1 << 30

// contemptRepetitionValue is the flat repetition-draw adjustment spec.md
// §4.7 calls a "contempt-style adjustment": the maximiser at a node with
// alpha >= 0 (already doing well) is nudged away from repeating, the
// minimiser symmetric about beta <= 0.
const contemptRepetitionValue = 30

// Result is one search's outcome: the move to play and its score in
// Evaluate's white-relative convention (positive favours white), whichever
// side is to move at the root.
type Result struct {
	Best  gm.Move
	Score int
}

// Engine bundles per-position search state: a transposition table, killer
// table, and previous-best-move ring. Grounded on the teacher's package
// globals (engine/transposition.go's TransTable, engine/killer.go's
// KillerStruct), consolidated onto one struct so multiple Boards can run
// independent searches without sharing state (spec.md §5: "a Position owns
// its own TT... no two threads may mutate the same Position").
type Engine struct {
	tt      *TranspositionTable
	killers KillerTable
	ring    PreviousBestRing
}

// NewEngine allocates a fresh search engine with an empty table, killer
// array, and previous-best ring.
func NewEngine() *Engine {
	return &Engine{tt: NewTranspositionTable()}
}

// Reset clears all per-game search state, used by ucinewgame.
func (e *Engine) Reset() {
	e.tt.Clear()
	e.killers.Clear()
	e.ring.Clear()
}

// IterativeDeepening searches maxDepth plies of iterative deepening from
// b's current position, recording the best move and score at each depth and
// seeding the next depth's move ordering with it. It stops early if a
// forced mate was found or the position is a threefold repetition.
func (e *Engine) IterativeDeepening(b *gm.Board, maxDepth int) Result {
	maximizing := b.SideToMove() == gm.White
	result := Result{Best: gm.NoMove, Score: 0}

	for depth := 1; depth <= maxDepth; depth++ {
		score, best := e.search(b, depth, maximizing, -Infinity, Infinity)
		if best != gm.NoMove {
			result = Result{Best: best, Score: score}
			e.ring.Push(best)
		}
		if score == Infinity || score == -Infinity || b.IsThreefoldRepetition() {
			break
		}
	}
	return result
}

// search implements spec.md §4.7's max/min alpha-beta with TT probing,
// move-ordering reuse of the previous-best ring and killer table, and late
// move reduction.
func (e *Engine) search(b *gm.Board, depth int, maximizing bool, alpha, beta int) (int, gm.Move) {
	if depth == 0 {
		return Evaluate(b), gm.NoMove
	}

	if b.IsThreefoldRepetition() {
		if maximizing {
			if alpha >= 0 {
				return -contemptRepetitionValue, gm.NoMove
			}
			return 0, gm.NoMove
		}
		if beta <= 0 {
			return contemptRepetitionValue, gm.NoMove
		}
		return 0, gm.NoMove
	}

	hash := b.Hash()
	if entry, hit := e.tt.Probe(hash, depth, alpha, beta); hit {
		return entry.Value, entry.Best
	}

	moveList := b.GenerateLegalMoves()
	moves := moveList.Moves
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			if maximizing {
				return -Infinity, gm.NoMove
			}
			return Infinity, gm.NoMove
		}
		return 0, gm.NoMove
	}

	reorderMoves(moves, &e.ring, e.killers.Get(depth))

	bestScore := Infinity
	if maximizing {
		bestScore = -Infinity
	}
	bestMove := moves[0]
	alphaIn, betaIn := alpha, beta

	for i, m := range moves {
		if !b.PushMove(m) {
			continue
		}

		var score int
		if depth >= 3 && i >= 5 {
			score, _ = e.search(b, depth-2, !maximizing, alpha, beta)
			if alpha < score && score < beta {
				score, _ = e.search(b, depth-1, !maximizing, alpha, beta)
			}
		} else {
			score, _ = e.search(b, depth-1, !maximizing, alpha, beta)
		}
		b.PopMove()

		if maximizing {
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = m
			}
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}

	e.ring.Push(bestMove)
	e.killers.Set(depth, bestMove)
	e.tt.Store(hash, depth, bestScore, alphaIn, betaIn, bestMove)

	return bestScore, bestMove
}
