package types

// CastlingRights is a 4-bit set of {white-kingside, white-queenside,
// black-kingside, black-queenside} availability.
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0

	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = CastlingWhiteOO << 1
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO

	CastlingBlackOO  CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO CastlingRights = CastlingBlackOO << 1
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO

	CastlingAny    CastlingRights = CastlingWhite | CastlingBlack
	CastlingLength CastlingRights = 16
)

// Has reports whether all bits of rhs are set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs && rhs != CastlingNone
}

// Remove clears the given castling right(s).
func (lhs *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*lhs &^= rhs
	return *lhs
}

// Add sets the given castling right(s).
func (lhs *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*lhs |= rhs
	return *lhs
}

// kingsideRight and queensideRight index castling rights by color.
var kingsideRight = [ColorLength]CastlingRights{CastlingWhiteOO, CastlingBlackOO}
var queensideRight = [ColorLength]CastlingRights{CastlingWhiteOOO, CastlingBlackOOO}

// KingsideRight returns the kingside castling right for c.
func KingsideRight(c Color) CastlingRights { return kingsideRight[c] }

// QueensideRight returns the queenside castling right for c.
func QueensideRight(c Color) CastlingRights { return queensideRight[c] }

// Both returns the combined kingside+queenside right for c.
func Both(c Color) CastlingRights { return kingsideRight[c] | queensideRight[c] }

// String renders the right in FEN order "KQkq", "-" when none are set.
func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	s := ""
	if lhs.Has(CastlingWhiteOO) {
		s += "K"
	}
	if lhs.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if lhs.Has(CastlingBlackOO) {
		s += "k"
	}
	if lhs.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
