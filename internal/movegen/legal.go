package movegen

import (
	"github.com/fkopp/chesscore/internal/moveslice"
	"github.com/fkopp/chesscore/internal/position"
	. "github.com/fkopp/chesscore/internal/types"
)

// GenerateLegalMoves clears list, then fills it with every legal move in
// pos: Evasions when the side to move is in check, NonEvasions otherwise,
// filtered by IsLegalMove.
func GenerateLegalMoves(pos *position.Position, list *moveslice.MoveSlice) {
	list.Clear()
	pseudo := moveslice.NewMoveSlice()
	if pos.InCheck() {
		GenerateMoves(pos, pseudo, Evasions)
	} else {
		GenerateMoves(pos, pseudo, NonEvasions)
	}
	for i := 0; i < pseudo.Len(); i++ {
		if m := pseudo.At(i); IsLegalMove(pos, m) {
			list.PushBack(m)
		}
	}
}

// IsLegalMove reports whether the pseudo-legal move m, generated against
// pos, actually leaves the mover's own king safe.
//
// King moves (including castling) are already vetted for attacked
// destinations at generation time, so only three cases remain: en passant
// has its own discovered-check test, a king-blocker may only move along
// the line it was pinned on, and everything else cannot self-check.
func IsLegalMove(pos *position.Position, m Move) bool {
	us := pos.SideToMove()
	from := m.From()

	if m.Kind() == EnPassant {
		return enPassantIsLegal(pos, us, from, m.To())
	}
	if from == pos.KingSquare(us) {
		return true
	}
	if !pos.KingBlockers(us).Has(from) {
		return true
	}
	return Line(pos.KingSquare(us), from).Has(m.To())
}

// enPassantIsLegal runs the discovered-check test spec's en passant rule
// requires: with both the capturing and captured pawn lifted from
// occupancy (and the capturer placed on its destination), the king must
// not come under attack from an opposing rook or queen along the rank
// the capture vacated.
func enPassantIsLegal(pos *position.Position, us Color, from, to Square) bool {
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	capSq := to.To(them.MoveDirection())
	occ := (pos.OccupiedAll() &^ from.Bb() &^ capSq.Bb()) | to.Bb()
	sliders := pos.PiecesBb(them, Rook) | pos.PiecesBb(them, Queen)
	return pos.AttackersTo(kingSq, them, occ)&sliders == BbZero
}
