package board

// PromotionRowMin and PromotionRowMax bound the squares on which a man
// landing promotes to a king.
const (
	PromotionRowMin = 1
	PromotionRowMax = 5
)

// MoveCacheSize bounds the legal-move memoization cache; it is flushed
// wholesale on overflow (the search package's transposition tables instead
// evict one entry per insertion).
const MoveCacheSize = 1_000_000

// PMAT is material value per own piece type.
var PMAT = map[byte]int{
	'P': 1000,
	'K': 3000,
}

// PST is the piece-square table per own piece type, indexed by square
// (0 and 51 are the off-board sentinels and always 0). Kings are valued flat
// since a king's mobility does not depend on its square; men are valued by
// how far advanced they are, rising from the promotion row toward the
// middle of the board and falling off again toward the back rank, hand-tuned
// the way the model's evaluation tables are.
var PST = map[byte][52]int{
	'K': kingPST(),
	'P': manPST(),
}

func kingPST() [52]int {
	var t [52]int
	for i := 1; i <= 50; i++ {
		t[i] = 50
	}
	return t
}

func manPST() [52]int {
	rowValue := [10]int{0, 10, 20, 32, 44, 55, 48, 34, 20, 8}
	var t [52]int
	for i := 1; i <= 50; i++ {
		t[i] = rowValue[rowOf(i)]
	}
	return t
}
