package tablebase

import (
	"github.com/halvard/underchex/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// WDL classifies a position from the side-to-move's viewpoint.
type WDL uint8

const (
	Unknown WDL = iota
	Win
	Draw
	Loss
)

func (w WDL) String() string {
	switch w {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Entry is one tablebase record: a WDL classification, distance-to-mate in
// plies (0 at the position being mated, -1 for draws), and — for Win
// entries only — the move that achieves it (spec.md §4.5).
type Entry struct {
	WDL      WDL
	DTM      int
	BestMove lang.Optional[board.Move]
}
