package board

import (
	"fmt"

	"github.com/halvard/underchex/pkg/hex"
)

// Move is a value type: a pair of cells plus an optional promotion choice.
// It carries no pointer to a board and no history; Boards do not reference
// Moves.
type Move struct {
	From, To  hex.Cell
	Promotion Kind // None unless this move promotes a pawn.
}

// Equals reports whether two moves are the same candidate move.
func (m Move) Equals(o Move) bool {
	return m.From.Eq(o.From) && m.To.Eq(o.To) && m.Promotion == o.Promotion
}

// String formats a move per spec.md §6: "q1,r1 -> q2,r2" with "=X" appended
// on promotion.
func (m Move) String() string {
	s := fmt.Sprintf("%v -> %v", m.From, m.To)
	if m.Promotion != None {
		s += fmt.Sprintf("=%v", promotionLetter(m.Promotion))
	}
	return s
}

func promotionLetter(k Kind) string {
	switch k {
	case Queen:
		return "Q"
	case Lance:
		return "L"
	case Chariot:
		return "C"
	case Knight:
		return "N"
	default:
		return "?"
	}
}
