package board

import "errors"

// ErrParseMove is returned by ParseMove when a move string does not match
// any accepted form (spec.md §7, "Parse failure"). No state changes on
// parse failure.
var ErrParseMove = errors.New("board: malformed move string")
