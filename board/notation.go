package board

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// String renders m in numeric notation: "<first><sep><last>", using "-" for
// a non-capture and "x" for a capture. Intermediate via-squares of a
// multi-leg capture are not rendered, matching the model's own terse move
// print.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%d%s%d", m.From(), sep, m.To())
}

// ParseSteps splits a numeric move token ("32-28" or "32x28x19") into its
// ordered square list.
func ParseSteps(tok string) ([]int, error) {
	tok = strings.ReplaceAll(tok, "x", "-")
	fields := strings.Split(tok, "-")
	steps := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("board: bad move token %q: %w", tok, err)
		}
		steps = append(steps, n)
	}
	if len(steps) < 2 {
		return nil, fmt.Errorf("board: move token %q has too few squares", tok)
	}
	return steps, nil
}

// MatchMove finds the unique legal move in pos whose squares match steps. A
// length-2 steps list matches any legal move sharing its (first, last) pair
// regardless of how many legs that move actually has; a longer list matches
// only a legal move whose full step sequence is the same set of squares,
// independent of order (a capture chain's board-forced leg order need not
// match the notation the caller typed it in). Returns (Move{}, false) if
// zero or more than one legal move matches.
func MatchMove(pos Position, steps []int, cache *MoveCache) (Move, bool) {
	legal := GenerateLegalMoves(pos, cache)
	var found Move
	count := 0
	for _, m := range legal {
		if matches(m, steps) {
			found = m
			count++
		}
	}
	if count != 1 {
		return Move{}, false
	}
	return found, true
}

func matches(m Move, steps []int) bool {
	if len(steps) == 2 {
		return m.From() == steps[0] && m.To() == steps[len(steps)-1]
	}
	if len(m.Steps) != len(steps) {
		return false
	}
	for _, s := range steps {
		if !slices.Contains(m.Steps, s) {
			return false
		}
	}
	return true
}
