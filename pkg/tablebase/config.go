// Package tablebase implements retrograde-analysis endgame tablebases for
// the small Underchex piece configurations supported by spec.md §4.5:
// KvK, KQvK, KLvK, KCvK, KNvK.
package tablebase

import (
	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/hex"
)

// Config identifies a supported piece census, ignoring king counts.
type Config uint8

const (
	Unsupported Config = iota
	KvK
	KQvK
	KLvK
	KCvK
	KNvK
)

// NumConfigs bounds the array of per-config tables in Tablebase.
const NumConfigs = KNvK + 1

func (c Config) String() string {
	switch c {
	case KvK:
		return "KvK"
	case KQvK:
		return "KQvK"
	case KLvK:
		return "KLvK"
	case KCvK:
		return "KCvK"
	case KNvK:
		return "KNvK"
	default:
		return "unsupported"
	}
}

// DetectConfig classifies b by its non-King piece census. Detection is
// color-agnostic: a single non-King piece of either color whose kind is
// Queen/Lance/Chariot/Knight selects the corresponding table; an empty
// census selects KvK. Any other census (more than one non-King piece, or a
// lone Pawn) is Unsupported.
func DetectConfig(b *board.Board) Config {
	kind := board.None
	count := 0

	for _, c := range hex.All() {
		p := b.Get(c)
		if p.IsEmpty() || p.Kind == board.King {
			continue
		}
		count++
		if count > 1 {
			return Unsupported
		}
		kind = p.Kind
	}

	switch count {
	case 0:
		return KvK
	case 1:
		return configForKind(kind)
	default:
		return Unsupported
	}
}

func configForKind(k board.Kind) Config {
	switch k {
	case board.Queen:
		return KQvK
	case board.Lance:
		return KLvK
	case board.Chariot:
		return KCvK
	case board.Knight:
		return KNvK
	default:
		return Unsupported
	}
}

// censusColor returns the color of the lone non-King piece that selected a
// KPvK config, or ColorNone for KvK/Unsupported. Generation always builds
// tables with that piece canonically White (see generateKPvK); a Black
// piece is handled by mirroring at probe time.
func censusColor(b *board.Board) board.Color {
	for _, c := range hex.All() {
		p := b.Get(c)
		if p.IsEmpty() || p.Kind == board.King {
			continue
		}
		return p.Color
	}
	return board.ColorNone
}

// mirrorBoard returns the point-reflected, color-swapped copy of b: every
// piece's color flips and its cell mirrors through the center
// (hex.Cell.Mirror), and the side to move flips. This is the symmetry
// spec.md §8 item 8 describes for evaluation and is used here to
// canonicalize a Black-held census piece onto White before probing or
// generating a KPvK table.
func mirrorBoard(b *board.Board) *board.Board {
	m := board.New()
	for _, c := range hex.All() {
		p := b.Get(c)
		if p.IsEmpty() {
			continue
		}
		m.Set(c.Mirror(), board.Piece{Kind: p.Kind, Color: p.Color.Opponent(), Variant: p.Variant})
	}
	m.ToMove = b.ToMove.Opponent()
	return m
}
