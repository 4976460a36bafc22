package board

// Move is either a non-capture (len(Steps) == 2, Takes empty) or a capture
// chain: Steps records the origin followed by the landing square of each
// leg, Takes records the captured square of each leg in the same order. A
// zero-value Move (no steps) means "pass".
type Move struct {
	Steps []int
	Takes []int
}

// IsZero reports whether m carries no steps at all.
func (m Move) IsZero() bool { return len(m.Steps) == 0 }

// IsCapture reports whether m captures at least one piece.
func (m Move) IsCapture() bool { return len(m.Takes) > 0 }

// From and To give the origin and final landing square of m.
func (m Move) From() int { return m.Steps[0] }
func (m Move) To() int   { return m.Steps[len(m.Steps)-1] }
