package search

import (
	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/eval"
)

// FindBestMove runs AlphaBeta from the root to the given depth and reports
// search statistics (spec.md §4.4).
func FindBestMove(b *board.Board, depth int) Result {
	var nodes int
	score, best, ok := alphaBeta(b, depth, -eval.Inf, eval.Inf, b.ToMove == board.White, &nodes)

	stats := Stats{NodesSearched: nodes, DepthReached: depth, Eval: int(score)}
	if !ok {
		return Result{Found: false, Stats: stats}
	}
	return Result{Move: best, Found: true, Stats: stats}
}
