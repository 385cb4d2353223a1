package tablebase_test

import (
	"testing"

	"github.com/halvard/underchex/pkg/board"
	"github.com/halvard/underchex/pkg/hex"
	"github.com/halvard/underchex/pkg/tablebase"
	"github.com/stretchr/testify/assert"
)

func TestDetectConfig(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[hex.Cell]board.Piece
		want   tablebase.Config
	}{
		{
			name: "bare kings",
			pieces: map[hex.Cell]board.Piece{
				{Q: 0, R: 0}: {Kind: board.King, Color: board.White},
				{Q: 3, R: 0}: {Kind: board.King, Color: board.Black},
			},
			want: tablebase.KvK,
		},
		{
			name: "king queen king",
			pieces: map[hex.Cell]board.Piece{
				{Q: 0, R: 0}: {Kind: board.King, Color: board.White},
				{Q: 3, R: 0}: {Kind: board.King, Color: board.Black},
				{Q: 1, R: 0}: {Kind: board.Queen, Color: board.Black},
			},
			want: tablebase.KQvK,
		},
		{
			name: "king knight king",
			pieces: map[hex.Cell]board.Piece{
				{Q: 0, R: 0}: {Kind: board.King, Color: board.White},
				{Q: 3, R: 0}: {Kind: board.King, Color: board.Black},
				{Q: 1, R: 0}: {Kind: board.Knight, Color: board.White},
			},
			want: tablebase.KNvK,
		},
		{
			name: "two extra pieces is unsupported",
			pieces: map[hex.Cell]board.Piece{
				{Q: 0, R: 0}: {Kind: board.King, Color: board.White},
				{Q: 3, R: 0}: {Kind: board.King, Color: board.Black},
				{Q: 1, R: 0}: {Kind: board.Knight, Color: board.White},
				{Q: 2, R: 0}: {Kind: board.Pawn, Color: board.White},
			},
			want: tablebase.Unsupported,
		},
		{
			name: "lone pawn is unsupported",
			pieces: map[hex.Cell]board.Piece{
				{Q: 0, R: 0}: {Kind: board.King, Color: board.White},
				{Q: 3, R: 0}: {Kind: board.King, Color: board.Black},
				{Q: 1, R: 0}: {Kind: board.Pawn, Color: board.White},
			},
			want: tablebase.Unsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.New()
			for c, p := range tt.pieces {
				b.Set(c, p)
			}
			assert.Equal(t, tt.want, tablebase.DetectConfig(b))
		})
	}
}
