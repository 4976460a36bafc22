package board

import "testing"

func TestParseFENWhiteToMove(t *testing.T) {
	pos, err := ParseFEN("W:W31-50:B1-20")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.Board[32] != 'P' {
		t.Fatalf("square 32 = %q, want 'P'", pos.Board[32])
	}
	if pos.Board[5] != 'p' {
		t.Fatalf("square 5 = %q, want 'p'", pos.Board[5])
	}
	if pos.Board[25] != '.' {
		t.Fatalf("square 25 = %q, want '.'", pos.Board[25])
	}
}

func TestParseFENBlackToMoveRotates(t *testing.T) {
	// Same physical position as above, but Black to move: Black's men
	// should appear uppercase at the rotated squares.
	pos, err := ParseFEN("B:W31-50:B1-20")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Black's man on (absolute) square 5 becomes, from Black's own
	// perspective, an uppercase piece at square 51-5 = 46.
	if pos.Board[46] != 'P' {
		t.Fatalf("square 46 = %q, want 'P'", pos.Board[46])
	}
}

func TestParseFENKingsAndSingleSquares(t *testing.T) {
	pos, err := ParseFEN("W:WK3,19:BK47,8")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.Board[3] != 'K' {
		t.Fatalf("square 3 = %q, want 'K'", pos.Board[3])
	}
	if pos.Board[19] != 'P' {
		t.Fatalf("square 19 = %q, want 'P'", pos.Board[19])
	}
	if pos.Board[47] != 'k' {
		t.Fatalf("square 47 = %q, want 'k'", pos.Board[47])
	}
	if pos.Board[8] != 'p' {
		t.Fatalf("square 8 = %q, want 'p'", pos.Board[8])
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	if _, err := ParseFEN("W:W31-50"); err == nil {
		t.Fatalf("expected error for malformed FEN")
	}
}

func TestParseExtendedEmptyBoardFillsAllSquares(t *testing.T) {
	literal := ""
	for i := 0; i < 100; i++ {
		literal += "."
	}
	pos, err := ParseExtended(literal)
	if err != nil {
		t.Fatalf("ParseExtended: %v", err)
	}
	for i := 1; i <= 50; i++ {
		if pos.Board[i] != '.' {
			t.Fatalf("square %d = %q, want '.'", i, pos.Board[i])
		}
	}
}

func TestParseExtendedRejectsWrongLength(t *testing.T) {
	if _, err := ParseExtended("too short"); err == nil {
		t.Fatalf("expected error for wrong-length literal")
	}
}
