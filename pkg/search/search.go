// Package search implements alpha-beta search with positional evaluation,
// composed with tablebase probing for small endgame configurations.
package search

import "github.com/halvard/underchex/pkg/board"

// Stats summarizes one find-best-move invocation.
type Stats struct {
	NodesSearched int
	DepthReached  int
	Eval          int
}

// Result is the outcome of a best-move search: the chosen move, if any
// legal move exists, and search statistics.
type Result struct {
	Move  board.Move
	Found bool
	Stats Stats
}
