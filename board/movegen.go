package board

import "golang.org/x/exp/slices"

var directions = [4]func(int) int{
	func(i int) int { return NE[i] },
	func(i int) int { return NW[i] },
	func(i int) int { return SE[i] },
	func(i int) int { return SW[i] },
}

// walkDirs is the same four diagonals as directions, in the table form Walk
// expects — used wherever a king needs the whole diagonal materialized up
// front rather than stepped one square at a time. It holds pointers because
// the tables are only filled in by init, after package variables are set.
var walkDirs = [4]*[52]int{&NE, &NW, &SE, &SW}

func isOpponent(c byte) bool { return c == 'p' || c == 'k' }

// leg is a single capture hop: the square jumped over and the square landed
// on.
type leg struct {
	take, land int
}

// oneLegCaptures returns every immediate capture available from pos for the
// piece occupying it, ignoring which squares have already been taken in the
// current chain (that filtering happens at the extension step).
func oneLegCaptures(b *[52]byte, pos int, piece byte) []leg {
	var out []leg
	if piece == 'K' {
		for _, dir := range walkDirs {
			pendingTake := -1
			for _, cur := range Walk(*dir, pos) {
				c := b[cur]
				if c == '.' {
					if pendingTake >= 0 {
						out = append(out, leg{pendingTake, cur})
					}
					continue
				}
				if isOpponent(c) {
					if pendingTake >= 0 {
						break // two opponents in a row, no intervening landing
					}
					pendingTake = cur
					continue
				}
				break // own piece blocks the walk
			}
		}
		return out
	}
	for _, dir := range directions {
		mid := dir(pos)
		if mid == 0 || !isOpponent(b[mid]) {
			continue
		}
		land := dir(mid)
		if land == 0 || b[land] != '.' {
			continue
		}
		out = append(out, leg{mid, land})
	}
	return out
}

// basicMoves returns every non-capture move available from pos for the
// piece occupying it.
func basicMoves(b *[52]byte, pos int, piece byte) []Move {
	var out []Move
	if piece == 'P' {
		for _, dir := range directions[:2] { // NE, NW only: men never move backward
			dest := dir(pos)
			if dest != 0 && b[dest] == '.' {
				out = append(out, Move{Steps: []int{pos, dest}})
			}
		}
		return out
	}
	for _, dir := range walkDirs {
		for _, cur := range Walk(*dir, pos) {
			if b[cur] != '.' {
				break
			}
			out = append(out, Move{Steps: []int{pos, cur}})
		}
	}
	return out
}

// captureChainsFrom enumerates every maximal capture chain starting at
// origin, simulated on a working copy of b with captured pieces left in
// place (still blocking re-jumps) until the whole move completes.
func captureChainsFrom(b [52]byte, origin int) []Move {
	piece := b[origin]
	b[origin] = '.'
	first := oneLegCaptures(&b, origin, piece)
	if len(first) == 0 {
		return nil
	}
	var out []Move
	for _, l := range first {
		out = append(out, extendCapture(&b, piece, []int{origin, l.land}, []int{l.take})...)
	}
	return out
}

func extendCapture(b *[52]byte, piece byte, steps, takes []int) []Move {
	pos := steps[len(steps)-1]
	raw := oneLegCaptures(b, pos, piece)

	var admissible []leg
	for _, l := range raw {
		if !slices.Contains(takes, l.take) {
			admissible = append(admissible, l)
		}
	}
	if len(admissible) == 0 {
		return []Move{{Steps: append([]int(nil), steps...), Takes: append([]int(nil), takes...)}}
	}

	var out []Move
	for _, l := range admissible {
		nextSteps := append(append([]int(nil), steps...), l.land)
		nextTakes := append(append([]int(nil), takes...), l.take)
		out = append(out, extendCapture(b, piece, nextSteps, nextTakes)...)
	}
	return out
}

// allCaptureChains gathers every completed capture chain for every own
// piece on the board.
func allCaptureChains(pos Position) []Move {
	var out []Move
	for i := 1; i <= 50; i++ {
		c := pos.Board[i]
		if c == 'P' || c == 'K' {
			out = append(out, captureChainsFrom(pos.Board, i)...)
		}
	}
	return out
}

// allBasicMoves gathers every non-capture move for every own piece.
func allBasicMoves(pos Position) []Move {
	var out []Move
	for i := 1; i <= 50; i++ {
		c := pos.Board[i]
		if c == 'P' || c == 'K' {
			out = append(out, basicMoves(&pos.Board, i, c)...)
		}
	}
	return out
}

// HasCapture is a cheap standalone check for whether the side to move has
// any capture available anywhere on the board — stops at the first one
// found, used by null-move pruning and quiescence.
func HasCapture(pos Position) bool {
	for i := 1; i <= 50; i++ {
		c := pos.Board[i]
		if c != 'P' && c != 'K' {
			continue
		}
		if len(oneLegCaptures(&pos.Board, i, c)) > 0 {
			return true
		}
	}
	return false
}

// GenerateLegalMoves returns the legal moves in pos under the maximum-capture
// rule: if any completed capture chain exists, only the chains of maximum
// length are legal; otherwise every basic non-capture is legal. cache may be
// nil to bypass memoization.
func GenerateLegalMoves(pos Position, cache *MoveCache) []Move {
	if cache != nil {
		if moves, ok := cache.get(pos); ok {
			return moves
		}
	}

	chains := allCaptureChains(pos)
	var moves []Move
	if len(chains) > 0 {
		maxTakes := 0
		for _, m := range chains {
			if len(m.Takes) > maxTakes {
				maxTakes = len(m.Takes)
			}
		}
		for _, m := range chains {
			if len(m.Takes) == maxTakes {
				moves = append(moves, m)
			}
		}
	} else {
		moves = allBasicMoves(pos)
	}

	if cache != nil {
		cache.store(pos, moves)
	}
	return moves
}

// MoveCache memoizes GenerateLegalMoves results by position key, bounded at
// MoveCacheSize and flushed wholesale on overflow.
type MoveCache struct {
	entries map[uint64][]Move
}

// NewMoveCache returns an empty move cache.
func NewMoveCache() *MoveCache {
	return &MoveCache{entries: make(map[uint64][]Move)}
}

func (c *MoveCache) get(pos Position) ([]Move, bool) {
	moves, ok := c.entries[pos.Hash()]
	return moves, ok
}

func (c *MoveCache) store(pos Position, moves []Move) {
	if len(c.entries) >= MoveCacheSize {
		clear(c.entries)
	}
	c.entries[pos.Hash()] = moves
}
