package types

// Square identifies one of the 64 board squares, indexed rank-major with
// A1=0, H8=63.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone

	SqLength = 64
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// IsLight reports whether the square is a light square.
func (sq Square) IsLight() bool {
	return (int(sq.FileOf())^int(sq.RankOf()))&1 == 0
}

// SquareOf builds a square from a file and rank, or SqNone if either is
// invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a two-character algebraic square ("e4"), returning
// SqNone if it is not well-formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := FileFromChar(s[0])
	r := RankFromChar(s[1])
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns the algebraic name of the square (e.g. "e4"), or "-" if
// invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step away in direction d, or SqNone if that
// would leave the board or wrap across a file edge.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case South:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	switch d {
	case Northeast, Northwest:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case Southeast, Southwest:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	}
	to := int(sq) + int(d)
	if to < 0 || to >= SqLength {
		return SqNone
	}
	return Square(to)
}

// Distance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	dr := int(a.RankOf()) - int(b.RankOf())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
