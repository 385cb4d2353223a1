package board

import (
	"strconv"
	"strings"

	"github.com/halvard/underchex/pkg/hex"
)

// ParseMove parses a move in one of the three text forms from spec.md §6:
//
//	"q1,r1 q2,r2"
//	"q1,r1,q2,r2"
//	"q1,r1 q2,r2 X"   X in {Q,L,C,N}, case-insensitive promotion choice
//
// It performs no legality check and never mutates board state; a malformed
// string returns ErrParseMove.
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)

	switch len(fields) {
	case 1:
		parts := strings.Split(fields[0], ",")
		if len(parts) != 4 {
			return Move{}, ErrParseMove
		}
		from, err := parseCell(parts[0], parts[1])
		if err != nil {
			return Move{}, err
		}
		to, err := parseCell(parts[2], parts[3])
		if err != nil {
			return Move{}, err
		}
		return Move{From: from, To: to}, nil

	case 2:
		from, err := parseCellToken(fields[0])
		if err != nil {
			return Move{}, err
		}
		to, err := parseCellToken(fields[1])
		if err != nil {
			return Move{}, err
		}
		return Move{From: from, To: to}, nil

	case 3:
		from, err := parseCellToken(fields[0])
		if err != nil {
			return Move{}, err
		}
		to, err := parseCellToken(fields[1])
		if err != nil {
			return Move{}, err
		}
		promo, ok := parsePromotionLetter(fields[2])
		if !ok {
			return Move{}, ErrParseMove
		}
		return Move{From: from, To: to, Promotion: promo}, nil

	default:
		return Move{}, ErrParseMove
	}
}

func parseCellToken(tok string) (hex.Cell, error) {
	parts := strings.Split(tok, ",")
	if len(parts) != 2 {
		return hex.Cell{}, ErrParseMove
	}
	return parseCell(parts[0], parts[1])
}

func parseCell(qs, rs string) (hex.Cell, error) {
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return hex.Cell{}, ErrParseMove
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return hex.Cell{}, ErrParseMove
	}
	if q < -hex.Radius || q > hex.Radius || r < -hex.Radius || r > hex.Radius {
		return hex.Cell{}, ErrParseMove
	}
	return hex.Cell{Q: int8(q), R: int8(r)}, nil
}

func parsePromotionLetter(s string) (Kind, bool) {
	if len(s) != 1 {
		return None, false
	}
	switch s[0] {
	case 'Q', 'q':
		return Queen, true
	case 'L', 'l':
		return Lance, true
	case 'C', 'c':
		return Chariot, true
	case 'N', 'n':
		return Knight, true
	default:
		return None, false
	}
}
