package search

import "draughts100/board"

// SearchPVF runs the forced-variation searcher: a negamax that only
// explores lines where the side on move either captures, or (on its own
// ply) hands the opponent a forced capture. Iterative deepening 1..99 until
// the node budget is exhausted.
func (e *Engine) SearchPVF(pos board.Position, maxNodes int) (board.Move, int, []PVNode) {
	e.PVF.FlushIfHalfFull()
	e.Nodes = 0

	score := pos.Score
	for depth := 1; depth <= 99; depth++ {
		score = e.pvf(pos, depth, 0, maxNodes)
		if e.Nodes >= maxNodes || absInt(score) >= MateValue {
			break
		}
	}

	best, _, _ := e.PVF.BestEntry(pos.Hash())
	pv := reconstructPV(pos, e.PVF.BestEntry)
	return best, score, pv
}

// pvf alternates player between 0 (the side whose captures are always
// explored) and 1 (the opponent, who must only capture). Moves that don't
// fit the current player's constraint are filtered out before recursing.
func (e *Engine) pvf(pos board.Position, depth, player, maxNodes int) int {
	e.Nodes++
	key := pos.Hash()

	if entry, ok := e.PVF.Get(key); ok && entry.Depth >= depth {
		return entry.Score
	}
	if absInt(pos.Score) >= MateValue {
		return pos.Score
	}
	if depth <= 0 && !board.HasCapture(pos) {
		return pos.Score
	}

	moves := board.GenerateLegalMoves(pos, e.Cache)
	var filtered []board.Move
	for _, m := range moves {
		switch {
		case m.IsCapture():
			filtered = append(filtered, m)
		case player == 0:
			if board.HasCapture(pos.DoMove(m)) {
				filtered = append(filtered, m)
			}
		}
	}
	if len(filtered) == 0 {
		return pos.Score
	}

	best := -MateValue
	var bestMove board.Move
	next := 1 - player
	for _, m := range filtered {
		child := pos.DoMove(m)
		score := -e.pvf(child, depth-1, next, maxNodes)
		if score > best {
			best = score
			bestMove = m
		}
	}

	e.PVF.Store(key, PVFEntry{Depth: depth, Score: best, Best: bestMove})
	return best
}
