package search

import (
	"draughts100/board"

	"golang.org/x/exp/slices"
)

// SearchMTD runs MTD-bi: iterative deepening 1..99, bisecting the score at
// each depth with a null-window probe via Bound, until the node budget is
// exhausted or a mate score is reached. Returns the best move found, its
// score, and the reconstructed principal variation.
func (e *Engine) SearchMTD(pos board.Position, maxNodes int) (board.Move, int, []PVNode) {
	e.MTD.FlushIfHalfFull()
	e.Nodes = 0

	score := pos.Score
	for depth := 1; depth <= 99; depth++ {
		lower, upper := -MateValue, MateValue
		for lower < upper-3 {
			gamma := (lower + upper + 1) / 2
			score = e.bound(pos, gamma, depth, maxNodes)
			if score >= gamma {
				lower = score
			} else {
				upper = score
			}
		}
		if e.Nodes >= maxNodes || absInt(score) >= MateValue {
			break
		}
	}

	best, _, _ := e.MTD.BestEntry(pos.Hash())
	pv := reconstructPV(pos, e.MTD.BestEntry)
	return best, score, pv
}

// bound is the MTD-bi null-window search: returns a value that is >= gamma
// iff the true score of pos is >= gamma.
func (e *Engine) bound(pos board.Position, gamma, depth, maxNodes int) int {
	e.Nodes++
	key := pos.Hash()

	if entry, ok := e.MTD.Get(key); ok && entry.Depth >= depth {
		belowBoth := entry.Score < entry.Gamma && entry.Score < gamma
		aboveBoth := entry.Score >= entry.Gamma && entry.Score >= gamma
		if belowBoth || aboveBoth {
			return entry.Score
		}
	}

	if absInt(pos.Score) >= MateValue {
		return pos.Score
	}

	hasCapture := board.HasCapture(pos)

	if depth >= 4 && !hasCapture {
		r := nullMoveReduction(depth)
		nullScore := -e.bound(pos.Rotate(), 1-gamma, depth-1-r, maxNodes)
		if nullScore >= gamma {
			return nullScore
		}
	}

	if depth <= 0 && !hasCapture {
		return pos.Score
	}

	moves := board.GenerateLegalMoves(pos, e.Cache)
	if len(moves) == 0 {
		return pos.Score
	}
	slices.SortStableFunc(moves, func(a, b board.Move) bool {
		return pos.EvalMove(a) > pos.EvalMove(b)
	})

	best := -MateValue
	var bestMove board.Move
	for _, m := range moves {
		child := pos.DoMove(m)
		score := -e.bound(child, 1-gamma, depth-1, maxNodes)
		if score > best {
			best = score
			bestMove = m
		}
		if score >= gamma {
			break
		}
	}

	e.MTD.Store(key, MTDEntry{Depth: depth, Score: best, Gamma: gamma, Best: bestMove})
	return best
}
