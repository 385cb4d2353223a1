package board_test

import (
	"testing"

	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveForms(t *testing.T) {
	want := board.Move{From: hex.Cell{Q: 0, R: 2}, To: hex.Cell{Q: 0, R: 1}}

	m, err := board.ParseMove("0,2 0,1")
	require.NoError(t, err)
	assert.True(t, m.Equals(want))

	m, err = board.ParseMove("0,2,0,1")
	require.NoError(t, err)
	assert.True(t, m.Equals(want))
}

func TestParseMovePromotion(t *testing.T) {
	m, err := board.ParseMove("0,-3 0,-4 q")
	require.NoError(t, err)
	assert.Equal(t, board.Queen, m.Promotion)

	m, err = board.ParseMove("0,-3 0,-4 N")
	require.NoError(t, err)
	assert.Equal(t, board.Knight, m.Promotion)
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "0,2", "0,2 0", "x,2 0,1", "0,2 0,1 Z", "0,2 0,1 x y"} {
		_, err := board.ParseMove(s)
		assert.ErrorIs(t, err, board.ErrParseMove, "input: %q", s)
	}
}

func TestMoveString(t *testing.T) {
	m := board.Move{From: hex.Cell{Q: 0, R: 2}, To: hex.Cell{Q: 0, R: -4}, Promotion: board.Chariot}
	assert.Equal(t, "0,2 -> 0,-4=C", m.String())
}
