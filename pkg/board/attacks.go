package board

import "github.com/halvard/underchex/pkg/hex"

// IsCellAttacked reports whether target is attacked by any piece of byColor
// (spec.md §4.3). For each of the six directions, the first piece
// encountered walking outward from target attacks it iff that piece
// belongs to byColor and can attack back along that direction; knights are
// checked separately via their fixed leap offsets.
func IsCellAttacked(b *Board, target hex.Cell, byColor Color) bool {
	for _, d := range hex.Directions() {
		cell := target.Add(d)
		dist := 1
		for cell.Valid() {
			piece := b.Get(cell)
			if piece.IsEmpty() {
				cell = cell.Add(d)
				dist++
				continue
			}
			if piece.Color == byColor && attacksAlong(piece, d, dist) {
				return true
			}
			break // first piece on this ray blocks everything beyond it
		}
	}

	for _, off := range knightOffsets {
		cell := hex.Cell{Q: target.Q + off.Q, R: target.R + off.R}
		if !cell.Valid() {
			continue
		}
		piece := b.Get(cell)
		if piece.Kind == Knight && piece.Color == byColor {
			return true
		}
	}
	return false
}

// attacksAlong reports whether a piece at the given direction and distance
// from its target (i.e. the piece sits at target.Add(d) repeated dist
// times) can attack along that ray.
func attacksAlong(p Piece, d hex.Direction, dist int) bool {
	switch p.Kind {
	case Queen:
		return true
	case King:
		return dist == 1
	case Chariot:
		return isChariotDirection(d)
	case Lance:
		if p.Variant == LanceB {
			return isLanceBDirection(d)
		}
		return isLanceADirection(d)
	case Pawn:
		return dist == 1 && pawnAttacksFrom(d, p.Color)
	default:
		return false
	}
}

func isChariotDirection(d hex.Direction) bool {
	return d == hex.NE || d == hex.NW || d == hex.SE || d == hex.SW
}

func isLanceADirection(d hex.Direction) bool {
	return d == hex.N || d == hex.S || d == hex.NW || d == hex.SE
}

func isLanceBDirection(d hex.Direction) bool {
	return d == hex.N || d == hex.S || d == hex.NE || d == hex.SW
}

// pawnAttacksFrom reports whether a pawn of the given color, sitting in
// direction d from its target, attacks that target. A White pawn attacks
// the cells N/NE/NW of itself, which from the target's viewpoint means an
// attacking White pawn sits to the S/SE/SW; symmetrically for Black.
func pawnAttacksFrom(d hex.Direction, c Color) bool {
	if c == White {
		return d == hex.S || d == hex.SE || d == hex.SW
	}
	return d == hex.N || d == hex.NE || d == hex.NW
}

// IsInCheck reports whether color's king is currently attacked.
func IsInCheck(b *Board, color Color) bool {
	return IsCellAttacked(b, b.KingCell(color), color.Opponent())
}
