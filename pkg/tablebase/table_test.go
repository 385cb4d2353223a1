package tablebase

import (
	"testing"

	"github.com/halvard/underchex/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGetSetRoundtrip(t *testing.T) {
	tbl := newTable(4)

	ok := tbl.set(Hash(1), board.White, Entry{WDL: Win, DTM: 3})
	require.True(t, ok)

	e, found := tbl.get(Hash(1), board.White)
	require.True(t, found)
	assert.Equal(t, Win, e.WDL)
	assert.Equal(t, 3, e.DTM)

	_, found = tbl.get(Hash(1), board.Black)
	assert.False(t, found)
}

func TestTableCapacityDropsNewKeysSilently(t *testing.T) {
	tbl := newTable(2)

	assert.True(t, tbl.set(Hash(1), board.White, Entry{WDL: Draw}))
	assert.True(t, tbl.set(Hash(2), board.White, Entry{WDL: Draw}))
	assert.False(t, tbl.set(Hash(3), board.White, Entry{WDL: Draw}))
	assert.Equal(t, 2, tbl.len())

	// Overwriting an existing key at capacity still succeeds.
	assert.True(t, tbl.set(Hash(1), board.White, Entry{WDL: Win, DTM: 1}))
	e, _ := tbl.get(Hash(1), board.White)
	assert.Equal(t, Win, e.WDL)
}
