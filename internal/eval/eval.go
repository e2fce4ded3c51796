// Package eval implements the position's only evaluator: a PSQT-plus-
// material accumulator updated incrementally from Position's set/remove
// piece callbacks, tapered by a non-pawn-material phase counter. Search
// heuristics, mobility, king safety, and pawn structure are the search
// layer's job, not this one's.
package eval

import (
	. "github.com/fkopp/chesscore/internal/types"
)

// Accumulator receives piece placement/removal notifications from a
// Position during make/unmake, so evaluation state never has to be
// recomputed from scratch. Position depends only on this interface, so
// alternative evaluators can be swapped in without touching L5.
type Accumulator interface {
	OnSetPiece(side Color, pt PieceType, sq Square)
	OnRemovePiece(side Color, pt PieceType, sq Square)
}

// PSQT is the core's evaluator: material value plus piece-square
// preference, tapered between midgame and endgame tables by a phase
// counter driven by non-pawn, non-king material.
type PSQT struct {
	Phase int
	Mid   [ColorLength]Value
	End   [ColorLength]Value
}

// NewPSQT returns a zeroed accumulator, ready to receive OnSetPiece calls
// as a position is built up from an empty board.
func NewPSQT() *PSQT {
	return &PSQT{}
}

// Reset zeroes the accumulator in place, for reuse across positions
// without reallocating.
func (a *PSQT) Reset() {
	a.Phase = 0
	a.Mid[White], a.Mid[Black] = 0, 0
	a.End[White], a.End[Black] = 0, 0
}

func (a *PSQT) OnSetPiece(side Color, pt PieceType, sq Square) {
	s := table[MakePiece(side, pt)][sq]
	a.Phase += pt.GamePhaseValue()
	a.Mid[side] += pt.ValueOf() + s.Mid
	a.End[side] += pt.ValueOf() + s.End
}

func (a *PSQT) OnRemovePiece(side Color, pt PieceType, sq Square) {
	s := table[MakePiece(side, pt)][sq]
	a.Phase -= pt.GamePhaseValue()
	a.Mid[side] -= pt.ValueOf() + s.Mid
	a.End[side] -= pt.ValueOf() + s.End
}

// Score returns the tapered evaluation from White's perspective: positive
// favors White. The phase counter is normalized to [0,1] (1 = full
// midgame material still on the board, 0 = bare endgame) and used to
// interpolate between the midgame and endgame running sums.
func (a *PSQT) Score() Value {
	t := float64(a.Phase) / float64(GamePhaseMax)
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	midTotal := a.Mid[White] - a.Mid[Black]
	endTotal := a.End[White] - a.End[Black]
	return Score{Mid: midTotal, End: endTotal}.Tapered(t)
}
