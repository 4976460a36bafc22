package main

import "testing"

func TestParsePositionCommandFEN(t *testing.T) {
	pos, moves, err := parsePositionCommand([]string{"W:W31-50:B1-20"})
	if err != nil {
		t.Fatalf("parsePositionCommand: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("got moves %v, want none", moves)
	}
	if pos.Board[31] != 'P' {
		t.Fatalf("square 31 = %q, want P", pos.Board[31])
	}
}

func TestParsePositionCommandExtendedLiteral(t *testing.T) {
	literal := ""
	for i := 0; i < 100; i++ {
		literal += "."
	}
	pos, moves, err := parsePositionCommand([]string{literal})
	if err != nil {
		t.Fatalf("parsePositionCommand: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("got moves %v, want none", moves)
	}
	if pos.Board[1] != '.' {
		t.Fatalf("square 1 = %q, want .", pos.Board[1])
	}
}

func TestParsePositionCommandWithMoves(t *testing.T) {
	_, moves, err := parsePositionCommand([]string{"W:W31-50:B1-20", "moves", "32-28", "19-23"})
	if err != nil {
		t.Fatalf("parsePositionCommand: %v", err)
	}
	want := []string{"32-28", "19-23"}
	if len(moves) != len(want) {
		t.Fatalf("got moves %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("got moves %v, want %v", moves, want)
		}
	}
}

func TestParsePositionCommandMissingLiteral(t *testing.T) {
	if _, _, err := parsePositionCommand(nil); err == nil {
		t.Fatalf("expected an error for a missing board literal")
	}
}

func TestParseGoCommandDefaults(t *testing.T) {
	algo, nodes := parseGoCommand(nil)
	if algo != "mtd" {
		t.Fatalf("algo = %q, want mtd", algo)
	}
	if nodes <= 0 {
		t.Fatalf("nodes = %d, want a positive default", nodes)
	}
}

func TestParseGoCommandOverrides(t *testing.T) {
	algo, nodes := parseGoCommand([]string{"ab", "nodes", "500"})
	if algo != "ab" {
		t.Fatalf("algo = %q, want ab", algo)
	}
	if nodes != 500 {
		t.Fatalf("nodes = %d, want 500", nodes)
	}
}
