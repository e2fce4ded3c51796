package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fkopp/chesscore/internal/types"
)

func TestStartPositionFEN(t *testing.T) {
	p, err := NewPositionFEN(StartFen, nil)
	assert.NoError(t, err)
	assert.Equal(t, StartFen, p.FEN())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingWhite|CastlingBlack, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.False(t, p.InCheck())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestFenRejectsBadFields(t *testing.T) {
	_, err := NewPositionFEN("not a fen at all", nil)
	assert.Error(t, err)

	_, err = NewPositionFEN("8/8/8/8/8/8/8/8 w", nil)
	assert.Error(t, err)
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidFormat, pe.Kind, "a FEN must have exactly six fields")

	_, err = NewPositionFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra", nil)
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidFormat, pe.Kind)

	_, err = NewPositionFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", nil)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidPieces, pe.Kind)

	_, err = NewPositionFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", nil)
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidTurn, pe.Kind)

	_, err = NewPositionFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1", nil)
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidCastling, pe.Kind)

	_, err = NewPositionFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", nil)
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidEnPassant, pe.Kind)

	_, err = NewPositionFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", nil)
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidHalfmoveCount, pe.Kind)

	_, err = NewPositionFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", nil)
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InvalidFullmoveCount, pe.Kind)
}

func TestMakeUnmakeRestoresZobrist(t *testing.T) {
	p, err := NewPositionFEN(StartFen, nil)
	assert.NoError(t, err)
	before := p.ZobristKey()

	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	p.MakeMove(m)
	assert.NotEqual(t, before, p.ZobristKey())

	p.UnmakeMove(m)
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, StartFen, p.FEN())
}

func TestDoublePushEnPassantAttackerGuard(t *testing.T) {
	// No black pawn attacks e3, so the guard must clear the ep target.
	p, err := NewPositionFEN(StartFen, nil)
	assert.NoError(t, err)
	p.MakeMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	assert.Equal(t, SqNone, p.EnPassantSquare())

	// White pawn on c5 attacks d6, so the target is retained here.
	p2, err := NewPositionFEN("rnbqkbnr/ppp1pppp/8/2Pp4/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 1", nil)
	assert.NoError(t, err)
	assert.Equal(t, SqD6, p2.EnPassantSquare())
}

func TestCastlingRevokedOnRookCapture(t *testing.T) {
	// White rook sits on h1; black bishop can capture it.
	p, err := NewPositionFEN("4k3/8/8/8/8/8/6b1/4K2R b K - 0 1", nil)
	assert.NoError(t, err)
	assert.True(t, p.CastlingRights().Has(CastlingWhiteOO))

	p.MakeMove(CreateMove(SqG2, SqH1, Normal, PtNone))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
}

func TestCastlingMoveRelocatesRook(t *testing.T) {
	p, err := NewPositionFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", nil)
	assert.NoError(t, err)

	p.MakeMove(CreateMove(SqE1, SqG1, Castle, PtNone))
	assert.Equal(t, WhiteKing, p.PieceOn(SqG1))
	assert.Equal(t, WhiteRook, p.PieceOn(SqF1))
	assert.Equal(t, PieceNone, p.PieceOn(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))

	p.UnmakeMove(CreateMove(SqE1, SqG1, Castle, PtNone))
	assert.Equal(t, WhiteKing, p.PieceOn(SqE1))
	assert.Equal(t, WhiteRook, p.PieceOn(SqH1))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteOO))
}

func TestCheckersAndPinnersAfterDiscoveredPin(t *testing.T) {
	// Black rook on e8, white king on e1, white bishop on e3 pinned.
	p, err := NewPositionFEN("4r3/8/8/8/8/4B3/8/4K3 w - - 0 1", nil)
	assert.NoError(t, err)
	assert.True(t, p.Pinners(White).Has(SqE8))
	assert.True(t, p.KingBlockers(White).Has(SqE3))
	assert.False(t, p.InCheck())
}

func TestPromotionCreatesPiece(t *testing.T) {
	p, err := NewPositionFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1", nil)
	assert.NoError(t, err)
	m := CreateMove(SqA7, SqA8, Promotion, Queen)
	p.MakeMove(m)
	assert.Equal(t, WhiteQueen, p.PieceOn(SqA8))
	assert.Equal(t, PieceNone, p.PieceOn(SqA7))
	p.UnmakeMove(m)
	assert.Equal(t, WhitePawn, p.PieceOn(SqA7))
	assert.Equal(t, PieceNone, p.PieceOn(SqA8))
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	p, err := NewPositionFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", nil)
	assert.NoError(t, err)
	m := CreateMove(SqE5, SqD6, EnPassant, PtNone)
	p.MakeMove(m)
	assert.Equal(t, WhitePawn, p.PieceOn(SqD6))
	assert.Equal(t, PieceNone, p.PieceOn(SqD5))
	assert.Equal(t, PieceNone, p.PieceOn(SqE5))
	p.UnmakeMove(m)
	assert.Equal(t, WhitePawn, p.PieceOn(SqE5))
	assert.Equal(t, BlackPawn, p.PieceOn(SqD5))
}
