package board

import (
	"fmt"
	"strings"

	"github.com/halvard/underchex/pkg/hex"
)

// Board is a hex chess position: piece placement, side to move, cached king
// cells and move counters. It is a cheap value-ish object with full-copy
// semantics — Copy never aliases cell storage with its source.
//
// Invariants (see spec.md §3):
//   - exactly one King of each color exists on-board after initialization
//   - WhiteKing/BlackKing equal the actual cells of the respective kings
//   - no cell holds a piece with Color == ColorNone
//   - ToMove is White or Black outside the cleared state
type Board struct {
	cells [hex.NumCells]Piece

	ToMove Color

	WhiteKing hex.Cell
	BlackKing hex.Cell

	HalfMoves int
	FullMoves int
}

// New returns a cleared board (see Clear).
func New() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Get returns the piece at c. Behavior is undefined for off-board c.
func (b *Board) Get(c hex.Cell) Piece {
	return b.cells[index(c)]
}

// Set places piece at c. If piece is a King, the cached king cell for its
// color is updated. Callers must never bypass Set when placing a king, or
// the king cache desynchronizes from the board (spec.md §4.2).
func (b *Board) Set(c hex.Cell, piece Piece) {
	b.cells[index(c)] = piece
	if piece.Kind == King {
		switch piece.Color {
		case White:
			b.WhiteKing = c
		case Black:
			b.BlackKing = c
		}
	}
}

// KingCell returns the cached king cell for the given color.
func (b *Board) KingCell(c Color) hex.Cell {
	if c == White {
		return b.WhiteKing
	}
	return b.BlackKing
}

// Clear empties the board: every cell becomes empty, ToMove becomes White,
// both king caches become (0,0), HalfMoves becomes 0 and FullMoves becomes 1.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Piece{}
	}
	b.ToMove = White
	b.WhiteKing = hex.Cell{}
	b.BlackKing = hex.Cell{}
	b.HalfMoves = 0
	b.FullMoves = 1
}

// Copy returns a deep value copy: mutating the result never affects b.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// String renders the board as glyph rows by rank, for debugging — not a
// persisted format (spec.md explicitly leaves serialization out of scope).
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn=%v half=%d full=%d\n", b.ToMove, b.HalfMoves, b.FullMoves)
	for r := int8(-hex.Radius); r <= hex.Radius; r++ {
		fmt.Fprintf(&sb, "r=%-3d ", r)
		for q := int8(-hex.Radius); q <= hex.Radius; q++ {
			c := hex.Cell{Q: q, R: r}
			if !c.Valid() {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(b.Get(c).String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// InitStart places the canonical Underchex starting position (spec.md §6).
func (b *Board) InitStart() {
	b.Clear()

	type placement struct {
		q, r  int8
		kind  Kind
		color Color
		v     LanceVariant
	}
	placements := []placement{
		// White back rank, r=4.
		{0, 4, King, White, 0},
		{-1, 4, Queen, White, 0},
		{1, 4, Knight, White, 0},
		{-2, 4, Lance, White, LanceA},
		{2, 4, Lance, White, LanceB},
		// White r=3.
		{-1, 3, Chariot, White, 0},
		{0, 3, Knight, White, 0},
		{1, 3, Chariot, White, 0},

		// Black back rank, r=-4.
		{0, -4, King, Black, 0},
		{1, -4, Queen, Black, 0},
		{-1, -4, Knight, Black, 0},
		{2, -4, Lance, Black, LanceA},
		{-2, -4, Lance, Black, LanceB},
		// Black r=-3.
		{1, -3, Chariot, Black, 0},
		{0, -3, Knight, Black, 0},
		{-1, -3, Chariot, Black, 0},
	}
	for _, p := range placements {
		b.Set(hex.Cell{Q: p.q, R: p.r}, Piece{Kind: p.kind, Color: p.color, Variant: p.v})
	}

	for _, q := range []int8{-2, -1, 0, 1, 2, 3} {
		b.Set(hex.Cell{Q: q, R: 2}, Piece{Kind: Pawn, Color: White})
	}
	for _, q := range []int8{-3, -2, -1, 0, 1, 2} {
		b.Set(hex.Cell{Q: q, R: -2}, Piece{Kind: Pawn, Color: Black})
	}
}
