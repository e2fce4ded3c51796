package attacks

import (
	. "github.com/fkopp/chesscore/internal/types"
)

var pseudoAttacks [PtLength][SqLength]Bitboard
var pawnAttacks [ColorLength][SqLength]Bitboard
var neighbourFilesMask [SqLength]Bitboard

var kingDeltas = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
var knightDeltas = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range kingDeltas {
			if to := deltaSquare(sq, d[0], d[1]); to.IsValid() {
				pseudoAttacks[King][sq] = PushSquare(pseudoAttacks[King][sq], to)
			}
		}
		for _, d := range knightDeltas {
			if to := deltaSquare(sq, d[0], d[1]); to.IsValid() {
				pseudoAttacks[Knight][sq] = PushSquare(pseudoAttacks[Knight][sq], to)
			}
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq] = PushSquare(pawnAttacks[White][sq], to)
		}
		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq] = PushSquare(pawnAttacks[White][sq], to)
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq] = PushSquare(pawnAttacks[Black][sq], to)
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq] = PushSquare(pawnAttacks[Black][sq], to)
		}

		var west, east Bitboard
		if f := sq.FileOf(); f > FileA {
			west = (f - 1).Bb()
		}
		if f := sq.FileOf(); f < FileH {
			east = (f + 1).Bb()
		}
		neighbourFilesMask[sq] = west | east

		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

// deltaSquare returns the square df files and dr ranks away from sq, or
// SqNone if that falls off the board.
func deltaSquare(sq Square, df, dr int) Square {
	f := int(sq.FileOf()) + df
	r := int(sq.RankOf()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}
