package search

import (
	"context"

	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/tablebase"
)

// FindBestMoveWithTablebase probes tb before searching (spec.md §4.4): a
// tablebase hit with a recorded best move (a Win) is returned directly, with
// Eval set to the folded mate score. A Draw hit with no recorded move (which
// is how KvK and KNvK always resolve) returns any legal move with Eval 0,
// per spec.md §4.4 step 2 — it does not fall through to search. Every other
// case falls back to FindBestMove: an unsupported census (Found == false),
// a Loss hit (Loss entries record no move), or a hit with no legal move.
func FindBestMoveWithTablebase(ctx context.Context, tb *tablebase.Tablebase, b *board.Board, depth int) Result {
	if tb != nil {
		res := tablebase.Probe(ctx, tb, b)
		if res.Found {
			score, _ := tablebase.GetScore(ctx, tb, b)
			move, ok := res.BestMove, res.HasMove
			if !ok && res.WDL == tablebase.Draw {
				if legal := board.GenerateLegal(b); len(legal) > 0 {
					move, ok = legal[0], true
				}
			}
			if ok {
				return Result{
					Move:  move,
					Found: true,
					Stats: Stats{NodesSearched: 0, DepthReached: 0, Eval: score},
				}
			}
		}
	}
	return FindBestMove(b, depth)
}
