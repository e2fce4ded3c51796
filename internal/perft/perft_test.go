package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/chesscore/internal/position"
)

// Perft scenarios from https://www.chessprogramming.org/Perft_Results,
// reproduced from the teacher's TestStandardPerft.
func TestPerftScenarios(t *testing.T) {
	type scenario struct {
		name   string
		fen    string
		depths []uint64 // Nodes at D1, D2, D3, ...
	}

	scenarios := []scenario{
		{
			name:   "start position",
			fen:    position.StartFen,
			depths: []uint64{20, 400, 8_902, 197_281, 4_865_609},
		},
		{
			name:   "kiwipete",
			fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depths: []uint64{48, 2_039, 97_862, 4_085_603},
		},
		{
			name:   "endgame rook activity",
			fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depths: []uint64{14, 191, 2_812, 43_238, 674_624},
		},
		{
			name:   "promotion heavy",
			fen:    "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1",
			depths: []uint64{6, 264, 9_467, 422_333},
		},
	}

	for _, s := range scenarios {
		s := s
		t.Run(s.name, func(t *testing.T) {
			for i, want := range s.depths {
				depth := i + 1
				pos, err := position.NewPositionFEN(s.fen, nil)
				assert.NoError(t, err)
				got := Perft(pos, depth, nil)
				assert.Equalf(t, want, got.Nodes, "%s depth %d", s.name, depth)
			}
		})
	}
}

// TestPerftBreakdown checks the move-kind breakdown the teacher's Perft
// struct reports, against the published depth-3/4 figures for the start
// position.
func TestPerftBreakdown(t *testing.T) {
	pos, err := position.NewPositionFEN(position.StartFen, nil)
	assert.NoError(t, err)

	got := Perft(pos, 3, nil)
	assert.EqualValues(t, 8_902, got.Nodes)
	assert.EqualValues(t, 34, got.Captures)
	assert.EqualValues(t, 12, got.Checks)
	assert.EqualValues(t, 0, got.CheckMates)

	pos, err = position.NewPositionFEN(position.StartFen, nil)
	assert.NoError(t, err)
	got = Perft(pos, 4, nil)
	assert.EqualValues(t, 197_281, got.Nodes)
	assert.EqualValues(t, 1_576, got.Captures)
	assert.EqualValues(t, 469, got.Checks)
	assert.EqualValues(t, 8, got.CheckMates)
}
