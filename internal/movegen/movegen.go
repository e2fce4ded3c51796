//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package movegen generates pseudo-legal and legal moves for a position:
// plain piece moves via the precomputed attack tables, pawn and castling
// moves specialised by hand, and a legality filter built on the
// checkers/blockers/pinners the position carries per ply.
package movegen

import (
	"github.com/fkopp/chesscore/internal/attacks"
	"github.com/fkopp/chesscore/internal/moveslice"
	"github.com/fkopp/chesscore/internal/position"
	. "github.com/fkopp/chesscore/internal/types"
)

// GenMode selects which subset of pseudo-legal moves GenerateMoves emits.
type GenMode int

const (
	// Quiet moves land on an empty square.
	Quiet GenMode = iota
	// Capture moves land on an opponent-occupied square.
	Capture
	// Evasions are legal only while the side to move is in check: king
	// moves plus, if in single check, moves that block or capture the
	// checker. If in double check only king moves are emitted.
	Evasions
	// NonEvasions covers quiet and capturing moves together; used only
	// when the side to move is not in check.
	NonEvasions
)

// GenerateMoves appends pseudo-legal moves of the given kind to list. list
// is not cleared first - callers own that decision.
func GenerateMoves(pos *position.Position, list *moveslice.MoveSlice, kind GenMode) {
	us := pos.SideToMove()
	them := us.Flip()
	occAll := pos.OccupiedAll()
	ourBb := pos.OccupiedBb(us)
	theirBb := pos.OccupiedBb(them)
	checkers := pos.Checkers()
	numCheckers := checkers.PopCount()

	var baseMask Bitboard
	switch kind {
	case Quiet:
		baseMask = ^occAll
	case Capture:
		baseMask = theirBb
	case NonEvasions, Evasions:
		baseMask = ^ourBb
	}

	generateKingMoves(pos, us, them, baseMask, list)
	if kind == Evasions && numCheckers >= 2 {
		// double check: only the king can move.
		return
	}

	pieceMask := baseMask
	if kind == Evasions && numCheckers == 1 {
		kingSq := pos.KingSquare(us)
		checkerSq := checkers.Lsb()
		pieceMask &= (Between(checkerSq, kingSq) &^ kingSq.Bb()) | checkerSq.Bb()
	}

	generatePawnMoves(pos, us, them, kind, pieceMask, list)
	if kind == Quiet || kind == NonEvasions {
		generateCastling(pos, us, list)
	}
	generatePieceMoves(pos, us, occAll, pieceMask, list)
}

// generateKingMoves emits king moves intersected with mask, dropping any
// destination attacked by the opponent - computed with the king itself
// removed from occupancy, so that an opposing slider "sees through" it.
func generateKingMoves(pos *position.Position, us, them Color, mask Bitboard, list *moveslice.MoveSlice) {
	kingSq := pos.KingSquare(us)
	occWithoutKing := pos.OccupiedAll() &^ kingSq.Bb()
	targets := attacks.GetPseudoAttacks(King, kingSq) & mask
	for targets != BbZero {
		to := targets.PopLsb()
		if pos.AttackersTo(to, them, occWithoutKing) != BbZero {
			continue
		}
		list.PushBack(CreateMove(kingSq, to, Normal, PtNone))
	}
}

// generatePieceMoves emits knight/bishop/rook/queen moves intersected with
// mask, using the magic-bitboard attack tables for sliders.
func generatePieceMoves(pos *position.Position, us Color, occAll, mask Bitboard, list *moveslice.MoveSlice) {
	for pt := Knight; pt <= Queen; pt++ {
		pieces := pos.PiecesBb(us, pt)
		for pieces != BbZero {
			from := pieces.PopLsb()
			targets := attacks.GetAttacksBb(pt, from, occAll) & mask
			for targets != BbZero {
				to := targets.PopLsb()
				list.PushBack(CreateMove(from, to, Normal, PtNone))
			}
		}
	}
}

// generateCastling emits the castling moves whose right is present, whose
// king is not in check, whose intervening squares are empty, and whose
// king path (including destination) is not attacked. The queenside path
// includes the b-file square, which must be empty/passable but need not
// be unattacked (only the rook passes through it).
func generateCastling(pos *position.Position, us Color, list *moveslice.MoveSlice) {
	if pos.InCheck() {
		return
	}
	cr := pos.CastlingRights()
	occ := pos.OccupiedAll()
	them := us.Flip()

	if us == White {
		if cr.Has(CastlingWhiteOO) && Between(SqE1, SqH1)&^SqH1.Bb()&occ == BbZero &&
			kingPathClear(pos, them, SqE1, SqG1) {
			list.PushBack(CreateMove(SqE1, SqG1, Castle, PtNone))
		}
		if cr.Has(CastlingWhiteOOO) && Between(SqE1, SqA1)&^SqA1.Bb()&occ == BbZero &&
			kingPathClear(pos, them, SqE1, SqC1) {
			list.PushBack(CreateMove(SqE1, SqC1, Castle, PtNone))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Between(SqE8, SqH8)&^SqH8.Bb()&occ == BbZero &&
			kingPathClear(pos, them, SqE8, SqG8) {
			list.PushBack(CreateMove(SqE8, SqG8, Castle, PtNone))
		}
		if cr.Has(CastlingBlackOOO) && Between(SqE8, SqA8)&^SqA8.Bb()&occ == BbZero &&
			kingPathClear(pos, them, SqE8, SqC8) {
			list.PushBack(CreateMove(SqE8, SqC8, Castle, PtNone))
		}
	}
}

// kingPathClear reports whether every square the king crosses from->to
// (inclusive of the destination) is unattacked by them. The king is known
// not to be in check already, so from itself needs no check.
func kingPathClear(pos *position.Position, them Color, from, to Square) bool {
	occ := pos.OccupiedAll()
	path := Between(from, to)
	for path != BbZero {
		sq := path.PopLsb()
		if pos.AttackersTo(sq, them, occ) != BbZero {
			return false
		}
	}
	return true
}
