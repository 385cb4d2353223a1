package board

import "github.com/halvard/underchex/pkg/hex"

// riderDirections returns the direction mask a rider piece slides along.
// Variant dispatch happens here via table lookup rather than open
// inheritance (spec.md §9): Lance's two variants differ only in this mask.
func riderDirections(p Piece) []hex.Direction {
	switch p.Kind {
	case Queen:
		return []hex.Direction{hex.N, hex.S, hex.NE, hex.SW, hex.NW, hex.SE}
	case Chariot:
		return []hex.Direction{hex.NE, hex.SW, hex.NW, hex.SE}
	case Lance:
		if p.Variant == LanceB {
			return []hex.Direction{hex.N, hex.S, hex.NE, hex.SW}
		}
		return []hex.Direction{hex.N, hex.S, hex.NW, hex.SE}
	default:
		return nil
	}
}

// knightOffsets are the six fixed leap targets, relative to the knight's
// cell. Each pair is the negation of another: the same list works to
// generate a knight's own moves and to test whether a knight attacks a
// given target (spec.md §4.3).
var knightOffsets = [6]hex.Cell{
	{Q: 1, R: -2},
	{Q: -1, R: -1},
	{Q: 2, R: -1},
	{Q: 1, R: 1},
	{Q: -1, R: 2},
	{Q: -2, R: 1},
}

// pawnForward returns the forward, forward-left and forward-right
// directions for a pawn of the given color.
func pawnForward(c Color) (f, fl, fr hex.Direction) {
	if c == White {
		return hex.N, hex.NW, hex.NE
	}
	return hex.S, hex.SW, hex.SE
}

// pawnPromotionRank returns the far rank r-coordinate a pawn of color c
// promotes on.
func pawnPromotionRank(c Color) int8 {
	if c == White {
		return -hex.Radius
	}
	return hex.Radius
}

// promotionChoices are the pieces a promoting pawn may become.
var promotionChoices = [4]Kind{Queen, Lance, Chariot, Knight}
