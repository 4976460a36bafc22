package search

import "draughts100/board"

// PVNode is one step of a reconstructed principal variation: the position
// before Move was played, the score the searcher recorded there, and the
// move itself.
type PVNode struct {
	Position board.Position
	Score    int
	Move     board.Move
}

// reconstructPV walks best returns from lookup starting at pos, following
// each best move into the resulting child position, stopping on a missing
// entry, a zero move, or a repeated key (loop guard).
func reconstructPV(pos board.Position, lookup func(uint64) (board.Move, int, bool)) []PVNode {
	visited := make(map[uint64]bool)
	var out []PVNode
	cur := pos
	for {
		key := cur.Hash()
		if visited[key] {
			break
		}
		visited[key] = true

		best, score, ok := lookup(key)
		if !ok || best.IsZero() {
			break
		}
		out = append(out, PVNode{Position: cur, Score: score, Move: best})
		cur = cur.DoMove(best)
	}
	return out
}
