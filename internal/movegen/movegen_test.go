package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/chesscore/internal/moveslice"
	"github.com/fkopp/chesscore/internal/position"
	. "github.com/fkopp/chesscore/internal/types"
)

func legalMoves(t *testing.T, fen string) *moveslice.MoveSlice {
	t.Helper()
	pos, err := position.NewPositionFEN(fen, nil)
	assert.NoError(t, err)
	list := moveslice.NewMoveSlice()
	GenerateLegalMoves(pos, list)
	return list
}

func TestStartPositionHasTwentyMoves(t *testing.T) {
	list := legalMoves(t, position.StartFen)
	assert.Equal(t, 20, list.Len())
}

func TestSingleCheckOnlyBlocksOrCaptures(t *testing.T) {
	// Black rook checks the white king along the e-file; the knight on c3
	// can only block on e4 - every other knight hop leaves the king in check.
	list := legalMoves(t, "4r3/8/8/8/8/2N5/4K3/8 w - - 0 1")
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == SqC3 {
			assert.Equal(t, SqE4, m.To())
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// White king on e1 checked by both a black rook on e8 and a black
	// knight on d3: every legal reply must move the king.
	list := legalMoves(t, "4r3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	for i := 0; i < list.Len(); i++ {
		assert.Equal(t, SqE1, list.At(i).From())
	}
}

func TestCastlingBlockedWhenPathAttacked(t *testing.T) {
	// Black rook on f8 attacks f1, so white cannot castle kingside through it.
	list := legalMoves(t, "5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.Kind() == Castle && m.To() == SqG1, "rook on f8 attacks f1, blocking the castling path")
	}
}

func TestCastlingAvailableWhenPathClear(t *testing.T) {
	list := legalMoves(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Kind() == Castle && m.To() == SqG1 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPinnedPieceMayOnlyMoveAlongPinLine(t *testing.T) {
	// White bishop on e3 is pinned to the king on e1 by the black rook on e8.
	pos, err := position.NewPositionFEN("4r3/8/8/8/8/4B3/8/4K3 w - - 0 1", nil)
	assert.NoError(t, err)
	list := moveslice.NewMoveSlice()
	GenerateLegalMoves(pos, list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == SqE3 {
			assert.Equal(t, FileE, m.To().FileOf())
		}
	}
}

func TestEnPassantPinnedCaptureIsIllegal(t *testing.T) {
	// White king e1, white pawn e5, black pawn d5 just pushed from d7, black
	// rook e8: capturing en passant would remove both e5 and d5, exposing
	// the king to the rook along the e-file, so exd6 e.p. must be illegal.
	pos, err := position.NewPositionFEN("4r3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", nil)
	assert.NoError(t, err)
	list := moveslice.NewMoveSlice()
	GenerateLegalMoves(pos, list)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, EnPassant, list.At(i).Kind())
	}
}

func TestEnPassantCaptureIsLegalWhenUnpinned(t *testing.T) {
	pos, err := position.NewPositionFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", nil)
	assert.NoError(t, err)
	list := moveslice.NewMoveSlice()
	GenerateLegalMoves(pos, list)
	found := false
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Kind() == EnPassant {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPromotionGeneratesAllFourChoices(t *testing.T) {
	list := legalMoves(t, "8/P6k/8/8/8/8/7K/8 w - - 0 1")
	choices := map[PieceType]bool{}
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Kind() == Promotion && m.From() == SqA7 && m.To() == SqA8 {
			choices[m.PromotionType()] = true
		}
	}
	assert.Len(t, choices, 4)
	assert.True(t, choices[Queen])
	assert.True(t, choices[Rook])
	assert.True(t, choices[Bishop])
	assert.True(t, choices[Knight])
}
