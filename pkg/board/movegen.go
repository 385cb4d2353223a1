package board

import "github.com/halvard/underchex/pkg/hex"

// GeneratePseudoLegal yields every move matching the piece movement rules
// for the side to move, with no check constraint (spec.md §4.3).
func GeneratePseudoLegal(b *Board) []Move {
	var moves []Move
	for _, c := range hex.All() {
		piece := b.Get(c)
		if piece.IsEmpty() || piece.Color != b.ToMove {
			continue
		}
		moves = appendPieceMoves(moves, b, c, piece)
	}
	return moves
}

func appendPieceMoves(moves []Move, b *Board, from hex.Cell, piece Piece) []Move {
	switch piece.Kind {
	case King:
		for _, d := range hex.Directions() {
			to := from.Add(d)
			if to.Valid() && canOccupy(b, to, piece.Color) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	case Queen, Chariot, Lance:
		for _, d := range riderDirections(piece) {
			to := from.Add(d)
			for to.Valid() {
				target := b.Get(to)
				if target.IsEmpty() {
					moves = append(moves, Move{From: from, To: to})
					to = to.Add(d)
					continue
				}
				if target.Color != piece.Color {
					moves = append(moves, Move{From: from, To: to})
				}
				break
			}
		}
	case Knight:
		for _, off := range knightOffsets {
			to := hex.Cell{Q: from.Q + off.Q, R: from.R + off.R}
			if to.Valid() && canOccupy(b, to, piece.Color) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	case Pawn:
		moves = appendPawnMoves(moves, b, from, piece)
	}
	return moves
}

func appendPawnMoves(moves []Move, b *Board, from hex.Cell, piece Piece) []Move {
	f, fl, fr := pawnForward(piece.Color)

	if to := from.Add(f); to.Valid() && b.Get(to).IsEmpty() {
		moves = appendPawnDestination(moves, from, to, piece.Color)
	}
	for _, d := range [3]hex.Direction{f, fl, fr} {
		to := from.Add(d)
		if !to.Valid() {
			continue
		}
		target := b.Get(to)
		if !target.IsEmpty() && target.Color == piece.Color.Opponent() {
			moves = appendPawnDestination(moves, from, to, piece.Color)
		}
	}
	return moves
}

func appendPawnDestination(moves []Move, from, to hex.Cell, color Color) []Move {
	if to.R == pawnPromotionRank(color) {
		for _, promo := range promotionChoices {
			moves = append(moves, Move{From: from, To: to, Promotion: promo})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to})
}

// canOccupy reports whether a piece of the given color may move onto cell
// to: empty, or holding an enemy piece.
func canOccupy(b *Board, to hex.Cell, color Color) bool {
	target := b.Get(to)
	return target.IsEmpty() || target.Color != color
}

// GenerateLegal filters GeneratePseudoLegal down to moves that do not leave
// the mover's own king in check.
func GenerateLegal(b *Board) []Move {
	pseudo := GeneratePseudoLegal(b)
	mover := b.ToMove

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		cp := b.Copy()
		MakeMove(cp, m)
		if !IsInCheck(cp, mover) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsMoveLegal reports whether m appears in the pseudo-legal move set for
// the side to move and leaves that side's king safe. This is the sole
// predicate the UI layer needs to validate a candidate move: it rejects
// moves from empty cells, from the opponent's pieces, and off-board cells.
func IsMoveLegal(b *Board, m Move) bool {
	for _, cand := range GeneratePseudoLegal(b) {
		if cand.Equals(m) {
			cp := b.Copy()
			MakeMove(cp, m)
			return !IsInCheck(cp, b.ToMove)
		}
	}
	return false
}

// MakeMove applies m to b. No legality validation is performed; callers
// guarantee m is legal (spec.md §4.3).
func MakeMove(b *Board, m Move) {
	piece := b.Get(m.From)
	if m.Promotion != None {
		piece.Kind = m.Promotion
		if m.Promotion == Lance {
			piece.Variant = LanceA
		}
	}

	b.Set(m.From, Piece{})
	b.Set(m.To, piece)

	if b.ToMove == Black {
		b.FullMoves++
	}
	b.ToMove = b.ToMove.Opponent()
	b.HalfMoves++
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func IsCheckmate(b *Board) bool {
	return IsInCheck(b, b.ToMove) && len(GenerateLegal(b)) == 0
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func IsStalemate(b *Board) bool {
	return !IsInCheck(b, b.ToMove) && len(GenerateLegal(b)) == 0
}

// IsGameOver reports whether the side to move has no legal moves.
func IsGameOver(b *Board) bool {
	return len(GenerateLegal(b)) == 0
}
