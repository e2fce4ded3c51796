package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bb(squares ...Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b = PushSquare(b, sq)
	}
	return b
}

func TestBetween(t *testing.T) {
	assert.Equal(t, bb(SqB2, SqC3, SqD4, SqE5, SqF6, SqG7, SqH8), Between(SqA1, SqH8))
	assert.Equal(t, bb(SqD5, SqD6, SqD7), Between(SqD4, SqD7))
	assert.Equal(t, bb(SqC2, SqD2, SqE2, SqF2), Between(SqB2, SqF2))
	assert.Equal(t, bb(SqG2, SqF3, SqE4, SqD5, SqC6, SqB7, SqA8), Between(SqH1, SqA8))
	assert.Equal(t, bb(SqB8), Between(SqE4, SqB8), "non-collinear fallback is {b} alone")
}

func TestLine(t *testing.T) {
	assert.Equal(t, FileA.Bb(), Line(SqA1, SqA8))
	assert.Equal(t, Rank1.Bb(), Line(SqA1, SqH1))
	assert.Equal(t, bb(SqA1, SqB2, SqC3, SqD4, SqE5, SqF6, SqG7, SqH8), Line(SqC3, SqF6))
	assert.Equal(t, BbZero, Line(SqA1, SqB3))
}

func TestShiftBitboard(t *testing.T) {
	assert.Equal(t, bb(SqE5), ShiftBitboard(bb(SqE4), North))
	assert.Equal(t, bb(SqE3), ShiftBitboard(bb(SqE4), South))
	assert.Equal(t, BbZero, ShiftBitboard(bb(SqH4), East), "east shift drops file-H bits")
	assert.Equal(t, BbZero, ShiftBitboard(bb(SqA4), West), "west shift drops file-A bits")
}

func TestPopLsb(t *testing.T) {
	b := bb(SqC3, SqA1, SqH8)
	var got []Square
	for b != BbZero {
		got = append(got, b.PopLsb())
	}
	assert.Equal(t, []Square{SqA1, SqC3, SqH8}, got)
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 3, bb(SqA1, SqD4, SqH8).PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
}

func TestHasAndPushPopSquare(t *testing.T) {
	var b Bitboard
	assert.False(t, b.Has(SqE4))
	b = PushSquare(b, SqE4)
	assert.True(t, b.Has(SqE4))
	b = PopSquare(b, SqE4)
	assert.False(t, b.Has(SqE4))
}
