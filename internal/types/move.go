package types

import "strings"

// MoveType categorizes the geometric kind of a move: Normal covers all
// non-special relocations (including captures and double pawn pushes).
type MoveType uint16

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castle
)

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castle:
		return "c"
	}
	return "?"
}

// Move packs a chess move into 16 bits:
//
//	bits 0-5   from square
//	bits 6-11  to square
//	bits 12-13 promotion piece type, relative to Knight (0=N,1=B,2=R,3=Q)
//	bits 14-15 move kind
type Move uint16

const (
	MoveNone Move = 0

	fromShift     = 0
	toShift       = 6
	promTypeShift = 12
	kindShift     = 14

	squareMask Move = 0x3F
	promMask   Move = 0x3
	kindMask   Move = 0x3
)

// CreateMove builds a Move from its fields. promType is ignored unless t is
// Promotion, in which case it must be one of Knight, Bishop, Rook, Queen.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<kindShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// Kind returns the move's MoveType.
func (m Move) Kind() MoveType {
	return MoveType((m >> kindShift) & kindMask)
}

// PromotionType returns the promotion piece type. Only meaningful when
// Kind() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m>>promTypeShift)&promMask) + Knight
}

// IsValid reports whether m encodes distinct, in-range squares. MoveNone
// is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// StringUci renders the move in UCI's long algebraic form (e.g. "e2e4",
// "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Kind() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

func (m Move) String() string {
	return m.StringUci()
}
