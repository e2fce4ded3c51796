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

// Package attacks answers "what does a piece attack" and "what attacks a
// square" queries. Sliding-piece attacks are looked up through magic
// bitboards (see magic.go); king/knight/pawn attacks through precomputed
// leaper tables (see leapers.go).
package attacks

import (
	"fmt"

	. "github.com/fkopp/chesscore/internal/types"
)

// GetAttacksBb returns the squares attacked by a piece of type pt (not
// Pawn) standing on sq, given the board's full occupancy. For sliding
// pieces this is a magic bitboard lookup; for King and Knight the
// occupancy is irrelevant and the precomputed pseudo-attack table is
// returned directly.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case King, Knight:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb: unsupported piece type %s", pt))
	}
}

// GetPseudoAttacks returns the attacks of a piece type on an empty board,
// ignoring any blockers. Sliding types see through to the board edge.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c standing on sq
// attacks diagonally.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// AttacksTo returns the bitboard of color c's pieces that attack square
// sq, given the board's occupancy. En passant is included: if sq is the
// current en passant target, the capturing pawn square is reported when
// occupied by a color-c pawn able to make that capture.
func AttacksTo(occupied Bitboard, pawnsOf, knightsOf, bishopsOf, rooksOf, queensOf, kingOf Bitboard, sq Square, c Color) Bitboard {
	return (GetPawnAttacks(c.Flip(), sq) & pawnsOf) |
		(GetAttacksBb(Knight, sq, occupied) & knightsOf) |
		(GetAttacksBb(King, sq, occupied) & kingOf) |
		(GetAttacksBb(Rook, sq, occupied) & (rooksOf | queensOf)) |
		(GetAttacksBb(Bishop, sq, occupied) & (bishopsOf | queensOf))
}

// RevealedAttacks returns the given rooks/bishops/queens that attack sq
// on the given occupancy, restricted to pieces still present in occupied,
// so a caller can pass an occupancy with a former blocker removed.
func RevealedAttacks(occupied Bitboard, bishopsOf, rooksOf, queensOf Bitboard, sq Square) Bitboard {
	return (GetAttacksBb(Rook, sq, occupied) & (rooksOf | queensOf) & occupied) |
		(GetAttacksBb(Bishop, sq, occupied) & (bishopsOf | queensOf) & occupied)
}

// NeighbourFiles returns the file(s) immediately east and west of sq's
// file; an edge file has only one neighbour.
func NeighbourFiles(sq Square) Bitboard {
	return neighbourFilesMask[sq]
}
