package eval

import "github.com/halvard/underchex/pkg/board"

// OrderMoves sorts pseudo-legal moves descending by MVV-LVA plus promotion
// and centralization (spec.md §4.4). Each move's score is computed exactly
// once before sorting — per spec.md §9's open question, a prior
// implementation scored repeatedly inside the comparator, which this
// avoids — then an insertion sort (sufficient for the small per-position
// move lists here) arranges them in place.
func OrderMoves(b *board.Board, moves []board.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = moveOrderScore(b, m)
	}

	for i := 1; i < len(moves); i++ {
		m, s := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < s {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = m
		scores[j+1] = s
	}
}

func moveOrderScore(b *board.Board, m board.Move) int {
	captured := b.Get(m.To)
	if captured.IsEmpty() {
		return centerBonus(m.To)
	}

	mover := b.Get(m.From)
	return 10*Value(captured.Kind) - Value(mover.Kind) + 5*Value(m.Promotion) + centerBonus(m.To)
}
