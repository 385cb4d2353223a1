package eval

import (
	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/hex"
)

// Value returns the nominal material value of a piece kind in centipawns
// (spec.md §4.4). None/empty cells are worth 0.
func Value(k board.Kind) int {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 300
	case board.Lance:
		return 400
	case board.Chariot:
		return 400
	case board.Queen:
		return 900
	case board.King:
		return 10000
	default:
		return 0
	}
}

// Unit returns the signed unit for a color: +1 for White, -1 for Black.
func Unit(c board.Color) int {
	if c == board.White {
		return 1
	}
	return -1
}

// centerBonus is the unsigned centralization term shared by static
// evaluation and move ordering: (Radius - centerDistance(c)) * 5.
func centerBonus(c hex.Cell) int {
	return (hex.Radius - hex.CenterDistance(c)) * 5
}

// Evaluate returns the static evaluation of b from White's perspective
// (spec.md §4.4): material, centralization, pawn advancement, mobility and
// king safety, with terminal overrides for checkmate and stalemate.
func Evaluate(b *board.Board) Score {
	legal := board.GenerateLegal(b)
	if len(legal) == 0 {
		if board.IsInCheck(b, b.ToMove) {
			if b.ToMove == board.White {
				return -Mate
			}
			return Mate
		}
		return Draw
	}

	score := 0
	for _, c := range hex.All() {
		p := b.Get(c)
		if p.IsEmpty() {
			continue
		}
		unit := Unit(p.Color)
		score += unit * Value(p.Kind)

		switch p.Kind {
		case board.Pawn:
			if p.Color == board.White {
				score += (hex.Radius - int(c.R)) * 10
			} else {
				score -= (hex.Radius + int(c.R)) * 10
			}
		case board.King:
			// No centralization term for the king.
		default:
			score += unit * centerBonus(c)
		}
	}

	score += Unit(b.ToMove) * 2 * len(legal)

	if board.IsInCheck(b, board.White) {
		score -= 50
	}
	if board.IsInCheck(b, board.Black) {
		score += 50
	}

	return Score(score)
}
