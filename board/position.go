package board

// Position is the engine's board state, always written from the point of
// view of the side to move: uppercase cells are the mover's own pieces,
// lowercase are the opponent's. Changing sides is done by rotating the
// position, never by tracking a color flag.
type Position struct {
	Board [52]byte
	Score int
}

// Hash returns the Zobrist key of p's board contents.
func (p Position) Hash() uint64 { return zobristHash(&p.Board) }

// Rotate returns a new position whose board is the reverse of this one with
// the case of each cell swapped, and whose score is negated. Sentinel cells
// stay '0'.
func (p Position) Rotate() Position {
	var out Position
	out.Board[0] = '0'
	out.Board[51] = '0'
	for i := 1; i <= 50; i++ {
		out.Board[i] = swapCase(p.Board[51-i])
	}
	out.Score = -p.Score
	return out
}

func swapCase(c byte) byte {
	switch c {
	case 'P':
		return 'p'
	case 'K':
		return 'k'
	case 'p':
		return 'P'
	case 'k':
		return 'K'
	default:
		return c
	}
}

// DoMove applies m and returns the rotated result. A zero-value Move (no
// steps) means "pass": return Rotate() unchanged otherwise.
func (p Position) DoMove(m Move) Position {
	if m.IsZero() {
		return p.Rotate()
	}
	next := p
	next.Score += p.EvalMove(m)

	piece := next.Board[m.From()]
	next.Board[m.From()] = '.'
	for _, k := range m.Takes {
		next.Board[k] = '.'
	}
	landing := m.To()
	if piece == 'P' && landing >= PromotionRowMin && landing <= PromotionRowMax {
		piece = 'K'
	}
	next.Board[landing] = piece

	return next.Rotate()
}

// EvalPos computes Score from scratch: the sum of PMAT[p]+PST[p][i] over own
// (uppercase) cells, minus the same sum taken over the rotated board (i.e.
// over the opponent's pieces, mirrored through the 51-i symmetry).
func (p Position) EvalPos() int {
	rotated := p.Rotate()
	return ownMaterial(&p.Board) - ownMaterial(&rotated.Board)
}

func ownMaterial(b *[52]byte) int {
	total := 0
	for i := 1; i <= 50; i++ {
		c := b[i]
		if c == 'P' || c == 'K' {
			total += PMAT[c] + PST[c][i]
		}
	}
	return total
}

// EvalMove returns the score delta of applying m, without mutating p. Own
// piece PST is evaluated at its origin and landing square (and gains a
// promotion bonus if the man crowns); each captured piece is valued via the
// 51-k mirror: it is an opponent piece at k, worth PMAT/PST of its
// uppercased type at the mirrored square 51-k.
func (p Position) EvalMove(m Move) int {
	if m.IsZero() {
		return 0
	}
	piece := p.Board[m.From()]
	delta := -PST[piece][m.From()]

	landingPiece := piece
	if piece == 'P' {
		landing := m.To()
		if landing >= PromotionRowMin && landing <= PromotionRowMax {
			landingPiece = 'K'
			delta += PMAT['K'] - PMAT['P']
		}
	}
	delta += PST[landingPiece][m.To()]

	for _, k := range m.Takes {
		captured := p.Board[k]
		q := upper(captured)
		delta += PMAT[q] + PST[q][51-k]
	}
	return delta
}

func upper(c byte) byte {
	if c == 'p' {
		return 'P'
	}
	if c == 'k' {
		return 'K'
	}
	return c
}
