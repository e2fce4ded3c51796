package types

// Piece is a (color, piece type) pair packed into one byte: the low 3 bits
// hold the PieceType, bit 3 holds the Color.
type Piece int8

const (
	PieceNone Piece = 0

	WhiteKing   Piece = Piece(King)
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)

	BlackKing   Piece = Piece(King) | 1<<3
	BlackPawn   Piece = Piece(Pawn) | 1<<3
	BlackKnight Piece = Piece(Knight) | 1<<3
	BlackBishop Piece = Piece(Bishop) | 1<<3
	BlackRook   Piece = Piece(Rook) | 1<<3
	BlackQueen  Piece = Piece(Queen) | 1<<3

	PieceLength = 16
)

var pieceToChar = string("-KPNBRQ--kpnbrq-")

// MakePiece builds the Piece for the given color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// String returns a single FEN-style letter (uppercase = white, "-" = none).
func (p Piece) String() string {
	return string(pieceToChar[p])
}

// IsValid reports whether p names an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// PieceFromChar parses a FEN piece letter (KQRBNPkqrbnp), returning
// PieceNone for anything else.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'K':
		return WhiteKing
	case 'Q':
		return WhiteQueen
	case 'R':
		return WhiteRook
	case 'B':
		return WhiteBishop
	case 'N':
		return WhiteKnight
	case 'P':
		return WhitePawn
	case 'k':
		return BlackKing
	case 'q':
		return BlackQueen
	case 'r':
		return BlackRook
	case 'b':
		return BlackBishop
	case 'n':
		return BlackKnight
	case 'p':
		return BlackPawn
	}
	return PieceNone
}
