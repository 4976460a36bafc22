package search

import (
	"draughts100/board"

	"golang.org/x/exp/slices"
)

// SearchAlphaBeta runs a classical failsoft alpha-beta searcher with
// aspiration windows: each iterative-deepening step is first tried inside a
// narrow window centered on the previous score; a fail-low/fail-high
// re-searches the same depth with a full window, and the next depth is
// again tried inside a narrow window around the new score.
func (e *Engine) SearchAlphaBeta(pos board.Position, maxNodes int) (board.Move, int, []PVNode) {
	e.AB.FlushIfHalfFull()
	e.Nodes = 0

	alpha, beta := -MateValue, MateValue
	score := pos.Score
	for depth := 1; depth <= 99; {
		score = e.alphabeta(pos, alpha, beta, depth, 0, maxNodes)
		if score <= alpha || score >= beta {
			alpha, beta = -MateValue, MateValue
			if e.Nodes >= maxNodes {
				break
			}
			continue // re-search the same depth with a full window
		}
		alpha, beta = score-AspirationWindow, score+AspirationWindow
		if e.Nodes >= maxNodes || absInt(score) >= MateValue {
			break
		}
		depth++
	}

	best, _, _ := e.AB.BestEntry(pos.Hash())
	pv := reconstructPV(pos, e.AB.BestEntry)
	return best, score, pv
}

// alphabeta is classical (not negamax) failsoft alpha-beta: scores are kept
// in player 0's (the root mover's) frame throughout, rather than flipping
// sign every ply, since DoMove already rotates the board into each ply's
// own mover's perspective. player alternates 0 (maximizer) / 1 (minimizer)
// in lockstep with that rotation.
func (e *Engine) alphabeta(pos board.Position, alpha, beta, depth, player, maxNodes int) int {
	e.Nodes++
	key := pos.Hash()

	if entry, ok := e.AB.Get(key); ok && entry.Depth >= depth {
		return entry.Score
	}

	if absInt(pos.Score) >= MateValue {
		if player == 1 {
			return -pos.Score
		}
		return pos.Score
	}

	hasCapture := board.HasCapture(pos)

	if depth >= 4 && !hasCapture {
		r := nullMoveReduction(depth)
		nullScore := e.alphabeta(pos.Rotate(), alpha, beta, depth-1-r, 1-player, maxNodes)
		if player == 0 && nullScore >= beta {
			return nullScore
		}
		if player == 1 && nullScore <= alpha {
			return nullScore
		}
	}

	if depth <= 0 && !hasCapture {
		if player == 1 {
			return -pos.Score
		}
		return pos.Score
	}

	moves := board.GenerateLegalMoves(pos, e.Cache)
	if len(moves) == 0 {
		if player == 1 {
			return -pos.Score
		}
		return pos.Score
	}
	slices.SortStableFunc(moves, func(a, b board.Move) bool {
		return pos.EvalMove(a) > pos.EvalMove(b)
	})

	var best int
	var bestMove board.Move
	if player == 0 {
		best = -MateValue
		for _, m := range moves {
			child := pos.DoMove(m)
			score := e.alphabeta(child, alpha, beta, depth-1, 1, maxNodes)
			if score > best {
				best = score
				bestMove = m
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		best = MateValue
		for _, m := range moves {
			child := pos.DoMove(m)
			score := e.alphabeta(child, alpha, beta, depth-1, 0, maxNodes)
			if score < best {
				best = score
				bestMove = m
			}
			if best < beta {
				beta = best
			}
			if alpha >= beta {
				break
			}
		}
	}

	e.AB.Store(key, ABEntry{Depth: depth, Score: best, Best: bestMove})
	return best
}
