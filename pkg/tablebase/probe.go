package tablebase

import (
	"context"

	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/eval"
)

// ProbeResult is the outcome of a tablebase lookup.
type ProbeResult struct {
	Found    bool
	Config   Config
	WDL      WDL
	DTM      int
	BestMove board.Move
	HasMove  bool
}

// Probe classifies b against the tablebase for its configuration,
// generating that configuration's table on first use (spec.md §4.5, §5).
// It returns Found=false when b's census has no supported table.
//
// Generation and storage always canonicalize a KPvK census piece to White;
// a Black-held piece is probed by mirroring the board (hex.Cell.Mirror,
// color swap), then mirroring any returned best move back before it is
// handed to the caller.
func Probe(ctx context.Context, tb *Tablebase, b *board.Board) ProbeResult {
	cfg := DetectConfig(b)
	if cfg == Unsupported {
		return ProbeResult{Found: false}
	}
	tb.GenerateIfNeeded(ctx, cfg)

	probeBoard := b
	mirrored := cfg != KvK && censusColor(b) == board.Black
	if mirrored {
		probeBoard = mirrorBoard(b)
	}

	h := tb.keys.hash(probeBoard)
	e, ok := tb.tableFor(cfg).get(h, probeBoard.ToMove)
	if !ok || e.WDL == Unknown {
		return ProbeResult{Found: false}
	}

	res := ProbeResult{Found: true, Config: cfg, WDL: e.WDL, DTM: e.DTM}
	if m, has := e.BestMove.V(); has {
		if mirrored {
			m = board.Move{From: m.From.Mirror(), To: m.To.Mirror(), Promotion: m.Promotion}
		}
		res.BestMove = m
		res.HasMove = true
	}
	return res
}

// GetScore converts a tablebase classification into the same score
// convention AlphaBeta uses (spec.md §4.5): a win folds to Mate-DTM plies
// from the side to move's perspective, a loss to -(Mate-DTM), a draw to 0.
// ok is false when no table covers b's configuration.
func GetScore(ctx context.Context, tb *Tablebase, b *board.Board) (int, bool) {
	res := Probe(ctx, tb, b)
	if !res.Found {
		return 0, false
	}
	switch res.WDL {
	case Win:
		return int(eval.Mate) - res.DTM, true
	case Loss:
		return -(int(eval.Mate) - res.DTM), true
	default:
		return int(eval.Draw), true
	}
}
