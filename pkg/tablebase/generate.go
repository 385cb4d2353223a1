package tablebase

import (
	"context"

	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/hex"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// GenerateIfNeeded generates cfg's table if it has not already been
// generated (idempotent, spec.md §5: "re-requests are no-ops"). ctx is used
// only for logging scope, not cancellation — generation always runs to
// completion.
func (tb *Tablebase) GenerateIfNeeded(ctx context.Context, cfg Config) Stats {
	if cfg == Unsupported || tb.generated[cfg] {
		return Stats{}
	}

	var st Stats
	switch cfg {
	case KvK:
		st = tb.generateKvK(ctx)
	case KQvK:
		st = tb.generateKPvK(ctx, cfg, board.Queen, []board.LanceVariant{0})
	case KLvK:
		st = tb.generateKPvK(ctx, cfg, board.Lance, []board.LanceVariant{board.LanceA, board.LanceB})
	case KCvK:
		st = tb.generateKPvK(ctx, cfg, board.Chariot, []board.LanceVariant{0})
	case KNvK:
		st = tb.generateKPvK(ctx, cfg, board.Knight, []board.LanceVariant{0})
	}
	tb.generated[cfg] = true
	return st
}

func (tb *Tablebase) tableFor(cfg Config) *table {
	if tb.tables[cfg] == nil {
		tb.tables[cfg] = newTable(tb.Capacity)
	}
	return tb.tables[cfg]
}

// generateKvK enumerates every legal (white king, black king,
// side-to-move) triple: no mating material exists, so every such position
// is a Draw (spec.md §4.5), stalemates included.
func (tb *Tablebase) generateKvK(ctx context.Context) Stats {
	tbl := tb.tableFor(KvK)
	var st Stats

	for _, wk := range hex.All() {
		for _, bk := range hex.All() {
			if wk.Eq(bk) || hex.Distance(wk, bk) <= 1 {
				continue
			}
			for _, side := range [2]board.Color{board.White, board.Black} {
				b := board.New()
				b.Set(wk, board.Piece{Kind: board.King, Color: board.White})
				b.Set(bk, board.Piece{Kind: board.King, Color: board.Black})
				b.ToMove = side

				if board.IsInCheck(b, side.Opponent()) {
					continue // unreachable: opponent would already be in check
				}

				if tbl.set(tb.keys.hash(b), side, Entry{WDL: Draw, DTM: -1}) {
					st.Draw++
				}
			}
		}
	}

	logw.Infof(ctx, "KvK: generated %d positions", st.Draw)
	return st
}

// workItem is an unresolved KPvK position kept across retrograde sweeps: a
// table key plus the hash/side of each legal successor, computed once at
// seeding time so later sweeps only look up already-decided neighbors.
type workItem struct {
	hash Hash
	side board.Color
	succ []successor
}

type successor struct {
	move board.Move
	hash Hash
	side board.Color
}

// generateKPvK runs the three-phase retrograde analysis of spec.md §4.5 for
// a KPvK configuration where P is kind, canonically placed as White (a
// Black-held piece is handled at probe time via mirroring — see
// config.go's mirrorBoard). variants lists the LanceVariant values to
// enumerate; all non-Lance kinds pass a single variant, 0.
func (tb *Tablebase) generateKPvK(ctx context.Context, cfg Config, kind board.Kind, variants []board.LanceVariant) Stats {
	tbl := tb.tableFor(cfg)
	var st Stats
	var worklist []workItem

	// Phase 1: enumerate and seed terminal positions.
	for _, wk := range hex.All() {
		for _, bk := range hex.All() {
			if wk.Eq(bk) || hex.Distance(wk, bk) <= 1 {
				continue
			}
			for _, pc := range hex.All() {
				if pc.Eq(wk) || pc.Eq(bk) {
					continue
				}
				for _, variant := range variants {
					for _, side := range [2]board.Color{board.White, board.Black} {
						b := board.New()
						b.Set(wk, board.Piece{Kind: board.King, Color: board.White})
						b.Set(bk, board.Piece{Kind: board.King, Color: board.Black})
						b.Set(pc, board.Piece{Kind: kind, Color: board.White, Variant: variant})
						b.ToMove = side

						if board.IsInCheck(b, side.Opponent()) {
							continue // unreachable position
						}

						h := tb.keys.hash(b)
						legal := board.GenerateLegal(b)

						if len(legal) == 0 {
							if board.IsInCheck(b, side) {
								if tbl.set(h, side, Entry{WDL: Loss, DTM: 0}) {
									st.Loss++
								}
							} else {
								if tbl.set(h, side, Entry{WDL: Draw, DTM: -1}) {
									st.Draw++
								}
							}
							continue
						}

						item := workItem{hash: h, side: side, succ: make([]successor, 0, len(legal))}
						for _, m := range legal {
							cp := b.Copy()
							board.MakeMove(cp, m)
							item.succ = append(item.succ, successor{move: m, hash: tb.keys.hash(cp), side: cp.ToMove})
						}
						worklist = append(worklist, item)
					}
				}
			}
		}
	}

	// Phase 2: fixed-point backward induction.
	for st.Sweeps = 1; st.Sweeps <= tb.SweepCap; st.Sweeps++ {
		changed := false
		next := worklist[:0]
		for _, item := range worklist {
			if decided, win := resolve(tbl, item); decided {
				if win {
					st.Win++
				} else {
					st.Loss++
				}
				changed = true
			} else {
				next = append(next, item)
			}
		}
		worklist = next
		if !changed {
			break
		}
	}

	// Phase 3: close out remaining positions as draws.
	for _, item := range worklist {
		if tbl.set(item.hash, item.side, Entry{WDL: Draw, DTM: -1}) {
			st.Draw++
		}
	}

	logw.Infof(ctx, "%v: generated in %d sweeps, win=%d draw=%d loss=%d", cfg, st.Sweeps, st.Win, st.Draw, st.Loss)
	return st
}

// resolve attempts to decide one worklist item against the current table
// state. If any successor is already a Loss for the opponent, this
// position is a Win; the move minimizing 1+opponent.DTM is recorded. Else,
// if every successor is already a Win for the opponent, this position is a
// Loss with DTM one more than the slowest such win. Otherwise it is left
// Unknown for another sweep.
func resolve(tbl *table, item workItem) (decided, win bool) {
	foundWin := false
	bestDTM := 0
	var bestMove board.Move

	allOpponentWins := true
	maxOpponentDTM := 0

	for _, s := range item.succ {
		e, ok := tbl.get(s.hash, s.side)
		if ok && e.WDL == Loss {
			cand := 1 + e.DTM
			if !foundWin || cand < bestDTM {
				bestDTM = cand
				bestMove = s.move
			}
			foundWin = true
		}
		if ok && e.WDL == Win {
			if e.DTM > maxOpponentDTM {
				maxOpponentDTM = e.DTM
			}
		} else {
			allOpponentWins = false
		}
	}

	if foundWin {
		tbl.set(item.hash, item.side, Entry{WDL: Win, DTM: bestDTM, BestMove: lang.Some(bestMove)})
		return true, true
	}
	if allOpponentWins {
		tbl.set(item.hash, item.side, Entry{WDL: Loss, DTM: 1 + maxOpponentDTM})
		return true, false
	}
	return false, false
}
