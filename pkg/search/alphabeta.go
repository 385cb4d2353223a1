package search

import (
	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// AlphaBeta runs fail-hard alpha-beta search to depth plies and returns the
// score and, at the root only, the best move found (spec.md §4.4). Deeper
// recursive calls do not report a move. maximizing must be true iff it is
// White to move in b.
func AlphaBeta(b *board.Board, depth int, alpha, beta eval.Score, maximizing bool) (eval.Score, *board.Move) {
	var nodes int
	score, best, ok := alphaBeta(b, depth, alpha, beta, maximizing, &nodes)
	if !ok {
		return score, nil
	}
	return score, &best
}

func alphaBeta(b *board.Board, depth int, alpha, beta eval.Score, maximizing bool, nodes *int) (eval.Score, board.Move, bool) {
	if depth == 0 {
		*nodes++
		return eval.Evaluate(b), board.Move{}, false
	}

	moves := board.GeneratePseudoLegal(b)
	eval.OrderMoves(b, moves)

	*nodes++

	var best board.Move
	hasBest := false
	hasLegal := false
	value := -eval.Inf
	if !maximizing {
		value = eval.Inf
	}

	for _, m := range moves {
		cp := b.Copy()
		board.MakeMove(cp, m)
		if board.IsInCheck(cp, b.ToMove) {
			continue // mover left own king in check: not legal
		}
		hasLegal = true

		childScore, _, _ := alphaBeta(cp, depth-1, alpha, beta, !maximizing, nodes)
		childScore = foldMateDistance(childScore)

		if maximizing {
			if childScore > value {
				value, best, hasBest = childScore, m, true
			}
			alpha = mathx.Max(alpha, value)
		} else {
			if childScore < value {
				value, best, hasBest = childScore, m, true
			}
			beta = mathx.Min(beta, value)
		}
		if beta <= alpha {
			break // standard fail-hard cutoff
		}
	}

	if !hasLegal {
		if board.IsInCheck(b, b.ToMove) {
			if maximizing {
				return -eval.Mate, board.Move{}, false
			}
			return eval.Mate, board.Move{}, false
		}
		return eval.Draw, board.Move{}, false
	}

	return value, best, hasBest
}

// foldMateDistance moves a mate score one ply closer to the node reporting
// it, so that a mate found deeper in the tree scores lower in magnitude
// than one found shallower — search therefore prefers faster mates and
// slower losses, per spec.md §4.4.
func foldMateDistance(s eval.Score) eval.Score {
	switch {
	case s > eval.Mate-1000:
		return s - 1
	case s < -eval.Mate+1000:
		return s + 1
	default:
		return s
	}
}
