package search

import (
	"draughts100/board"
	"testing"
)

func TestReconstructPVStopsOnMissingEntry(t *testing.T) {
	pos := newPosition(map[int]byte{32: 'P', 28: 'p'})
	lookup := func(uint64) (board.Move, int, bool) { return board.Move{}, 0, false }
	pv := reconstructPV(pos, lookup)
	if len(pv) != 0 {
		t.Fatalf("expected empty PV, got %v", pv)
	}
}

func TestReconstructPVStopsOnZeroMove(t *testing.T) {
	pos := newPosition(map[int]byte{32: 'P', 28: 'p'})
	lookup := func(uint64) (board.Move, int, bool) { return board.Move{}, 0, true }
	pv := reconstructPV(pos, lookup)
	if len(pv) != 0 {
		t.Fatalf("expected empty PV, got %v", pv)
	}
}

func TestReconstructPVFollowsChainUntilMissingEntry(t *testing.T) {
	pos := newPosition(map[int]byte{32: 'P', 28: 'p', 19: 'p', 10: 'p'})
	move := board.Move{Steps: []int{32, 23, 14, 5}, Takes: []int{28, 19, 10}}

	calls := 0
	lookup := func(key uint64) (board.Move, int, bool) {
		calls++
		if calls > 10 {
			t.Fatalf("reconstructPV did not stop; looped past 10 lookups")
		}
		if key == pos.Hash() {
			return move, 42, true
		}
		return board.Move{}, 0, false
	}

	pv := reconstructPV(pos, lookup)
	if len(pv) != 1 {
		t.Fatalf("got %d PV nodes, want 1", len(pv))
	}
	if pv[0].Move.From() != 32 || pv[0].Score != 42 {
		t.Fatalf("unexpected PV node: %+v", pv[0])
	}
}
