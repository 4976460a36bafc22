package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseExtended reads an "extended" board literal: 100 characters over
// {p,P,k,K,.}, whitespace allowed for readability, read in row-major order
// over the full 10x10 grid. Only the 50 dark (playable) cells carry
// meaning; light cells are skipped. The position is always given from
// White's point of view and is returned as-is (White to move).
func ParseExtended(s string) (Position, error) {
	var cells []byte
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		cells = append(cells, byte(r))
	}
	if len(cells) != 100 {
		return Position{}, fmt.Errorf("board: extended literal has %d cells, want 100", len(cells))
	}

	var abs [52]byte
	abs[0], abs[51] = '0', '0'
	sq := 0
	for idx, c := range cells {
		row, col := idx/10, idx%10
		if (row+col)%2 == 0 {
			continue // light square, no meaning
		}
		sq++
		switch c {
		case 'p', 'P', 'k', 'K', '.':
			abs[sq] = c
		default:
			return Position{}, fmt.Errorf("board: invalid cell %q at square %d", c, sq)
		}
	}

	pos := Position{Board: abs}
	pos.Score = pos.EvalPos()
	return pos, nil
}

// ParseFEN reads the "C:C1,C2,…:C1,C2,…[.suffix]" form: C is the side to
// move (W or B); the two groups each start with a color letter (W or B,
// order not significant) followed by a comma-separated list of squares or
// "a-b" ranges, each optionally prefixed with K for a king. Any trailing
// ".suffix" is accepted and discarded. Squares are given in the fixed,
// never-rotated White-relative numbering; the result is rotated into the
// engine's side-to-move convention when Black is to move.
func ParseFEN(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Position{}, fmt.Errorf("board: malformed FEN %q", s)
	}

	var sideToMove byte
	switch strings.ToUpper(strings.TrimSpace(parts[0])) {
	case "W":
		sideToMove = 'W'
	case "B":
		sideToMove = 'B'
	default:
		return Position{}, fmt.Errorf("board: unknown side to move %q", parts[0])
	}

	var abs [52]byte
	abs[0], abs[51] = '0', '0'
	for i := 1; i <= 50; i++ {
		abs[i] = '.'
	}

	for _, group := range parts[1:] {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		color := group[0]
		var isWhite bool
		switch color {
		case 'W', 'w':
			isWhite = true
		case 'B', 'b':
			isWhite = false
		default:
			return Position{}, fmt.Errorf("board: malformed FEN group %q", group)
		}

		for _, tok := range strings.Split(group[1:], ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			isKing := false
			if tok[0] == 'K' || tok[0] == 'k' {
				isKing = true
				tok = tok[1:]
			}
			lo, hi, err := parseSquareRange(tok)
			if err != nil {
				return Position{}, err
			}
			step := 1
			if hi < lo {
				step = -1
			}
			for n := lo; ; n += step {
				if n < 1 || n > 50 {
					return Position{}, fmt.Errorf("board: square %d out of range", n)
				}
				abs[n] = pieceChar(isWhite, isKing)
				if n == hi {
					break
				}
			}
		}
	}

	pos := Position{Board: abs}
	if sideToMove == 'B' {
		pos = pos.Rotate()
	}
	pos.Score = pos.EvalPos()
	return pos, nil
}

func pieceChar(white, king bool) byte {
	switch {
	case white && king:
		return 'K'
	case white:
		return 'P'
	case king:
		return 'k'
	default:
		return 'p'
	}
}

func parseSquareRange(tok string) (lo, hi int, err error) {
	if dash := strings.IndexByte(tok, '-'); dash > 0 {
		lo, err = strconv.Atoi(tok[:dash])
		if err != nil {
			return 0, 0, fmt.Errorf("board: bad range %q: %w", tok, err)
		}
		hi, err = strconv.Atoi(tok[dash+1:])
		if err != nil {
			return 0, 0, fmt.Errorf("board: bad range %q: %w", tok, err)
		}
		return lo, hi, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, 0, fmt.Errorf("board: bad square %q: %w", tok, err)
	}
	return n, n, nil
}
