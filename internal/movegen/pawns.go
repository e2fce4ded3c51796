package movegen

import (
	"github.com/fkopp/chesscore/internal/moveslice"
	"github.com/fkopp/chesscore/internal/position"
	. "github.com/fkopp/chesscore/internal/types"
)

// generatePawnMoves emits pushes, double pushes, diagonal captures, en
// passant and promotions for the side to move's pawns, each intersected
// with pieceMask (the check-evasion block/capture mask, or an unrestricted
// mask outside of check).
func generatePawnMoves(pos *position.Position, us, them Color, kind GenMode, pieceMask Bitboard, list *moveslice.MoveSlice) {
	myPawns := pos.PiecesBb(us, Pawn)
	occAll := pos.OccupiedAll()
	theirBb := pos.OccupiedBb(them)
	pushDir := us.MoveDirection()
	promRank := us.PromotionRank()

	includeQuiet := kind == Quiet || kind == NonEvasions || kind == Evasions
	includeCapture := kind == Capture || kind == NonEvasions || kind == Evasions

	if includeQuiet {
		singlePush := ShiftBitboard(myPawns, pushDir) &^ occAll
		homePawns := myPawns & us.PawnRank().Bb()
		crossed := ShiftBitboard(homePawns, pushDir) &^ occAll
		doublePush := ShiftBitboard(crossed, pushDir) &^ occAll

		emitPawnMoves(singlePush&pieceMask, oppositeDir(pushDir), promRank, list)

		back := oppositeDir(pushDir)
		for targets := doublePush & pieceMask; targets != BbZero; {
			to := targets.PopLsb()
			from := to.To(back).To(back)
			list.PushBack(CreateMove(from, to, Normal, PtNone))
		}
	}

	if includeCapture {
		for _, capDir := range captureDirs(us) {
			targets := ShiftBitboard(myPawns, capDir) & theirBb & pieceMask
			emitPawnMoves(targets, oppositeDir(capDir), promRank, list)
		}

		if epSq := pos.EnPassantSquare(); epSq != SqNone {
			capturedSq := epSq.To(them.MoveDirection())
			if pieceMask.Has(epSq) || pieceMask.Has(capturedSq) {
				for _, capDir := range captureDirs(us) {
					from := ShiftBitboard(epSq.Bb(), oppositeDir(capDir)) & myPawns
					if from != BbZero {
						list.PushBack(CreateMove(from.Lsb(), epSq, EnPassant, PtNone))
					}
				}
			}
		}
	}
}

// emitPawnMoves turns each target square into a move from target.To(back),
// expanding into the four promotion records (Queen first) when target is
// on the promotion rank.
func emitPawnMoves(targets Bitboard, back Direction, promRank Rank, list *moveslice.MoveSlice) {
	for targets != BbZero {
		to := targets.PopLsb()
		from := to.To(back)
		if to.RankOf() == promRank {
			emitPromotions(from, to, list)
		} else {
			list.PushBack(CreateMove(from, to, Normal, PtNone))
		}
	}
}

// emitPromotions pushes all four promotion choices for a pawn move landing
// on the back rank, queen first.
func emitPromotions(from, to Square, list *moveslice.MoveSlice) {
	list.PushBack(CreateMove(from, to, Promotion, Queen))
	list.PushBack(CreateMove(from, to, Promotion, Rook))
	list.PushBack(CreateMove(from, to, Promotion, Bishop))
	list.PushBack(CreateMove(from, to, Promotion, Knight))
}

// captureDirs returns the two diagonal capture directions for color us.
func captureDirs(us Color) [2]Direction {
	if us == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

// oppositeDir returns the reverse of a compass direction; every Direction
// constant is defined as a signed file/rank delta, so negation suffices.
func oppositeDir(d Direction) Direction {
	return -d
}
