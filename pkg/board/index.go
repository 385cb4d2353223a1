package board

import "github.com/halvard/underchex/pkg/hex"

// index gives every on-board cell a stable slot number in [0, hex.NumCells),
// the way the teacher's board.Square numbers chess squares for array and
// bitboard storage. Built once at package init from hex.All().
var cellToIndex = func() map[hex.Cell]int {
	m := make(map[hex.Cell]int, hex.NumCells)
	for i, c := range hex.All() {
		m[c] = i
	}
	return m
}()

func index(c hex.Cell) int {
	i, ok := cellToIndex[c]
	if !ok {
		// Off-board cell: an implementation boundary violation per spec.md §7.
		// Behavior is undefined; panic surfaces the bug immediately instead
		// of corrupting board state silently.
		panic("board: off-board cell")
	}
	return i
}
