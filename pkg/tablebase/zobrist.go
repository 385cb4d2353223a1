package tablebase

import (
	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/hex"
)

// Hash is a Zobrist-style 64-bit position fingerprint (spec.md §4.5).
type Hash uint64

// keys holds one random key per (cell, kind, color) cell-state, one extra
// per-cell key distinguishing a Lance's LanceB variant from LanceA, and one
// side-to-move key. Keys are generated deterministically from a fixed seed
// via a small xorshift PRNG, so two runs produce identical hashes — unlike
// the teacher's ZobristTable, which seeds math/rand and is only
// reproducible within a single Go toolchain's rand implementation.
//
// The extra Lance-variant key exists because (cell, kind, color) alone
// cannot distinguish a LanceA from a LanceB on the same cell/color: without
// it, two positions that differ only in Lance variant would hash
// identically and collide in the same table bucket, corrupting KLvK
// retrograde generation and probing (spec.md §8 properties #6/#7).
type keys struct {
	cellKind   [hex.NumCells][board.King + 1][3]uint64
	lanceB     [hex.NumCells]uint64
	sideToMove uint64
}

func newKeys(seed uint64) *keys {
	rng := newXorshift64(seed)

	k := &keys{}
	for cell := 0; cell < hex.NumCells; cell++ {
		for kind := board.Pawn; kind <= board.King; kind++ {
			k.cellKind[cell][kind][board.White] = rng.next()
			k.cellKind[cell][kind][board.Black] = rng.next()
		}
		k.lanceB[cell] = rng.next()
	}
	k.sideToMove = rng.next()
	return k
}

// hash computes the Zobrist hash of b: the XOR of keys for each occupied
// cell (plus the per-cell LanceB key, for a Lance in its B variant), XORed
// with the side key iff Black is to move.
func (k *keys) hash(b *board.Board) Hash {
	var h uint64
	for i, c := range hex.All() {
		p := b.Get(c)
		if p.IsEmpty() {
			continue
		}
		h ^= k.cellKind[i][p.Kind][p.Color]
		if p.Kind == board.Lance && p.Variant == board.LanceB {
			h ^= k.lanceB[i]
		}
	}
	if b.ToMove == board.Black {
		h ^= k.sideToMove
	}
	return Hash(h)
}

// xorshift64 is a minimal, deterministic xorshift64* PRNG (Marsaglia). It
// exists solely so the generated Zobrist keys are identical across runs and
// across Go versions, which math/rand does not guarantee.
type xorshift64 struct {
	state uint64
}

func newXorshift64(seed uint64) *xorshift64 {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15 // avoid the fixed point at zero
	}
	return &xorshift64{state: seed}
}

func (x *xorshift64) next() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return x.state * 0x2545F4914F6CDD1D
}
