package board

import "testing"

func TestHashDeterministic(t *testing.T) {
	a := newPosition(map[int]byte{32: 'P', 28: 'p'})
	b := newPosition(map[int]byte{32: 'P', 28: 'p'})
	if a.Hash() != b.Hash() {
		t.Fatalf("identical boards hashed differently")
	}
}

func TestHashDistinguishesPositions(t *testing.T) {
	a := newPosition(map[int]byte{32: 'P'})
	b := newPosition(map[int]byte{32: 'K'})
	if a.Hash() == b.Hash() {
		t.Fatalf("distinct boards hashed identically")
	}
}

func TestHashSensitiveToSquare(t *testing.T) {
	a := newPosition(map[int]byte{32: 'P'})
	b := newPosition(map[int]byte{31: 'P'})
	if a.Hash() == b.Hash() {
		t.Fatalf("distinct boards hashed identically")
	}
}
